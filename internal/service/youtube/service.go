package youtube

import (
	"context"
	"time"

	"github.com/Steve-651/mcp-youtube/internal/model"
	"github.com/Steve-651/mcp-youtube/internal/service/common"
)

// Default timeouts for the two yt-dlp invocations. Caption extraction gets
// longer because yt-dlp downloads the subtitle file, not just a JSON dump.
const (
	DefaultMetadataTimeout = 30 * time.Second
	DefaultCaptionTimeout  = 45 * time.Second
)

// Service is interface for YouTube metadata and caption extraction via yt-dlp
type Service interface {
	// FetchMetadata fetches video metadata for a URL as a single JSON document
	FetchMetadata(ctx context.Context, videoURL string) (*model.VideoMetadata, error)

	// FetchCaptions fetches English subtitle variants for a URL and parses
	// them into transcript segments. A video without subtitles is not an
	// error: the result carries zero segments and language "unknown".
	FetchCaptions(ctx context.Context, videoURL, videoID string) (*CaptionResult, error)
}

// CaptionResult is the outcome of one caption fetch
type CaptionResult struct {
	Segments []model.TranscriptSegment
	Language string
}

// Options configures the yt-dlp adapter
type Options struct {
	Binary          string        // yt-dlp executable name or path
	MetadataTimeout time.Duration // bound for the metadata invocation
	CaptionTimeout  time.Duration // bound for the caption invocation
	WorkDir         string        // directory for temporary caption files
}

// youtubeService implements Service
type youtubeService struct {
	cmdRunner common.CmdRunner
	opts      Options
}

// NewService creates a new Service with default CmdRunner and options
func NewService(opts Options) Service {
	return NewServiceWithCmdRunner(common.NewCmdRunner(), opts)
}

// NewServiceWithCmdRunner creates a new Service with custom CmdRunner (for testing)
func NewServiceWithCmdRunner(cmdRunner common.CmdRunner, opts Options) Service {
	if opts.Binary == "" {
		opts.Binary = "yt-dlp"
	}
	if opts.MetadataTimeout <= 0 {
		opts.MetadataTimeout = DefaultMetadataTimeout
	}
	if opts.CaptionTimeout <= 0 {
		opts.CaptionTimeout = DefaultCaptionTimeout
	}
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}
	return &youtubeService{
		cmdRunner: cmdRunner,
		opts:      opts,
	}
}

// ytDlpVideoInfo represents yt-dlp JSON output structure for video metadata
type ytDlpVideoInfo struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Uploader string  `json:"uploader"`
	Duration float64 `json:"duration"`
}
