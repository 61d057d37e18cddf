package transcript

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Steve-651/mcp-youtube/internal/errors"
	"github.com/Steve-651/mcp-youtube/internal/model"
	repository "github.com/Steve-651/mcp-youtube/internal/repository/transcript"
	"github.com/Steve-651/mcp-youtube/internal/service/youtube"
)

// sentinelText substitutes the transcript body when extraction yields no
// segments, keeping the persisted segment list non-empty
const sentinelText = "No transcript available for this video"

// Confidence heuristic: captions either existed or they didn't
const (
	confidenceExtracted = 0.95
	confidenceEmpty     = 0.0
)

// progressTotal is the number of checkpoints one extraction emits
const progressTotal = 4

// ProgressFunc receives ordered progress checkpoints between extraction
// steps. Emission is best-effort; a nil sink is valid.
type ProgressFunc func(progress, total int, message string)

// Summary is the small result returned after extraction. The full
// transcript is retrieved separately by video ID.
type Summary struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Uploader     string `json:"uploader"`
	SegmentCount int    `json:"segment_count"`
	Language     string `json:"language"`
	StoragePath  string `json:"storage_path"`
	FollowUp     string `json:"follow_up"`
}

// Service orchestrates metadata fetch, caption fetch, assembly and storage
type Service interface {
	// Transcribe runs the full extraction pipeline for a video URL
	Transcribe(ctx context.Context, videoURL string, progress ProgressFunc) (*Summary, error)

	// Get retrieves a previously persisted transcript by video ID
	Get(videoID string) (*model.Transcript, error)
}

// transcriptService implements Service
type transcriptService struct {
	youtubeSvc youtube.Service
	store      repository.Store
	logger     *log.Logger
}

// NewService creates a new Service
func NewService(youtubeSvc youtube.Service, store repository.Store) Service {
	return NewServiceWithLogger(youtubeSvc, store, log.New(os.Stderr, "", log.LstdFlags))
}

// NewServiceWithLogger creates a new Service with a custom logger (for testing)
func NewServiceWithLogger(youtubeSvc youtube.Service, store repository.Store, logger *log.Logger) Service {
	return &transcriptService{
		youtubeSvc: youtubeSvc,
		store:      store,
		logger:     logger,
	}
}

// Transcribe fetches metadata and captions for a video, assembles the
// transcript record and persists it. A caption failure degrades to an empty
// transcript; a metadata failure aborts the request.
func (s *transcriptService) Transcribe(ctx context.Context, videoURL string, progress ProgressFunc) (*Summary, error) {
	if videoURL == "" {
		return nil, errors.New(errors.CodeInvalidArg, "video URL is required")
	}

	// Step 1: metadata. Without a canonical video ID nothing can be stored.
	meta, err := s.youtubeSvc.FetchMetadata(ctx, videoURL)
	if err != nil {
		return nil, err
	}
	report(progress, 1, "fetched video metadata")

	// Step 2: captions. Failure here degrades to an empty transcript.
	segments := []model.TranscriptSegment{}
	language := model.LanguageUnknown
	captionResult, err := s.youtubeSvc.FetchCaptions(ctx, videoURL, meta.ID)
	if err != nil {
		s.logger.Printf("caption fetch failed for video %s, continuing without transcript: %v", meta.ID, err)
	} else {
		segments = captionResult.Segments
		language = captionResult.Language
	}
	report(progress, 2, "fetched captions")

	// Step 3: assemble the record
	record := s.assemble(meta, videoURL, segments, language)
	report(progress, 3, "assembled transcript")

	// Step 4: persist
	path, err := s.store.Save(meta.ID, record)
	if err != nil {
		return nil, err
	}
	report(progress, 4, "persisted transcript")

	return &Summary{
		VideoID:      record.VideoID,
		Title:        record.Title,
		Uploader:     record.Uploader,
		SegmentCount: len(record.Segments),
		Language:     record.Metadata.Language,
		StoragePath:  path,
		FollowUp:     "call get_transcript with this video_id for the full transcript",
	}, nil
}

// Get retrieves a persisted transcript by video ID
func (s *transcriptService) Get(videoID string) (*model.Transcript, error) {
	if videoID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "video ID is required")
	}
	return s.store.Get(videoID)
}

// assemble builds the canonical transcript record. Zero extracted segments
// become a single sentinel segment with zero confidence.
func (s *transcriptService) assemble(meta *model.VideoMetadata, videoURL string, segments []model.TranscriptSegment, language string) *model.Transcript {
	confidence := confidenceExtracted
	if len(segments) == 0 {
		segments = []model.TranscriptSegment{{Start: 0, Duration: 0, Text: sentinelText}}
		confidence = confidenceEmpty
	}

	return &model.Transcript{
		VideoID:  meta.ID,
		Title:    meta.Title,
		Uploader: meta.Uploader,
		Duration: meta.Duration,
		URL:      videoURL,
		Segments: segments,
		Metadata: model.TranscriptMetadata{
			TranscriptionDate: time.Now().UTC().Format(time.RFC3339),
			Source:            model.SourceYtDlp,
			Language:          language,
			Confidence:        confidence,
		},
	}
}

// report emits one progress checkpoint if a sink was supplied
func report(progress ProgressFunc, step int, message string) {
	if progress == nil {
		return
	}
	progress(step, progressTotal, message)
}
