package model

import (
	"time"

	"github.com/Steve-651/mcp-youtube/internal/errors"
)

// SourceYtDlp tags transcripts extracted via the yt-dlp subtitle pipeline
const SourceYtDlp = "yt-dlp"

// LanguageUnknown is recorded when no segments were available to detect from
const LanguageUnknown = "unknown"

// VideoMetadata represents YouTube video information as reported by yt-dlp.
// Title and Uploader stay empty when the upstream metadata lacks them;
// presentation layers choose their own display fallback.
type VideoMetadata struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Uploader string `json:"uploader"`
	Duration int    `json:"duration"` // duration in seconds
}

// TranscriptSegment represents one caption cue after parsing and filtering
type TranscriptSegment struct {
	Start    int    `json:"start"`    // offset from video start in seconds
	Duration int    `json:"duration"` // segment length in seconds
	Text     string `json:"text"`     // plain text, markup stripped
}

// TranscriptMetadata describes how and when a transcript was extracted
type TranscriptMetadata struct {
	TranscriptionDate string  `json:"transcription_date"` // RFC3339
	Source            string  `json:"source"`
	Language          string  `json:"language"`
	Confidence        float64 `json:"confidence"` // heuristic, in [0,1]
}

// Transcript is the persisted unit, one JSON file per video ID
type Transcript struct {
	VideoID  string              `json:"video_id"`
	Title    string              `json:"title"`
	Uploader string              `json:"uploader"`
	Duration int                 `json:"duration"`
	URL      string              `json:"url"`
	Segments []TranscriptSegment `json:"transcript"`
	Metadata TranscriptMetadata  `json:"metadata"`
}

// Validate checks the transcript against the persisted schema. Both the
// write and read paths of the store call this, so a file that decodes but
// violates an invariant is rejected instead of silently repaired.
func (t *Transcript) Validate() error {
	if t.VideoID == "" {
		return &errors.ValidationError{Field: "video_id", Reason: "must not be empty"}
	}
	if len(t.Segments) == 0 {
		return &errors.ValidationError{Field: "transcript", Reason: "must contain at least one segment"}
	}
	prevStart := 0
	for i, seg := range t.Segments {
		if seg.Start < 0 {
			return &errors.ValidationError{Field: "transcript", Reason: "segment start must not be negative"}
		}
		if seg.Duration < 0 {
			return &errors.ValidationError{Field: "transcript", Reason: "segment duration must not be negative"}
		}
		if i > 0 && seg.Start < prevStart {
			return &errors.ValidationError{Field: "transcript", Reason: "segment starts must be non-decreasing"}
		}
		prevStart = seg.Start
	}
	if t.Metadata.Confidence < 0 || t.Metadata.Confidence > 1 {
		return &errors.ValidationError{Field: "metadata.confidence", Reason: "must be between 0 and 1"}
	}
	if t.Metadata.Source == "" {
		return &errors.ValidationError{Field: "metadata.source", Reason: "must not be empty"}
	}
	if t.Metadata.TranscriptionDate != "" {
		if _, err := time.Parse(time.RFC3339, t.Metadata.TranscriptionDate); err != nil {
			return &errors.ValidationError{Field: "metadata.transcription_date", Reason: "must be an RFC3339 timestamp"}
		}
	}
	return nil
}
