package youtube

import (
	"context"
	"encoding/json"
	"math"
	"os/exec"
	"strings"

	"github.com/Steve-651/mcp-youtube/internal/errors"
	"github.com/Steve-651/mcp-youtube/internal/model"
)

// FetchMetadata fetches video metadata from a YouTube URL using yt-dlp
func (s *youtubeService) FetchMetadata(ctx context.Context, videoURL string) (*model.VideoMetadata, error) {
	// Input validation
	if videoURL == "" {
		return nil, errors.New(errors.CodeInvalidArg, "video URL is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.MetadataTimeout)
	defer cancel()

	// Request a single JSON metadata document, no media download
	args := []string{
		"--dump-single-json",
		"--no-playlist",
		"--skip-download",
		videoURL,
	}

	output, err := s.cmdRunner.Run(ctx, s.opts.Binary, args...)
	if err != nil {
		toolErr := asExternalToolError(err, ctx.Err())
		return nil, errors.Wrap(toolErr, errors.CodeExternal, classifyYtDlpError(toolErr))
	}

	var ytInfo ytDlpVideoInfo
	if err := json.Unmarshal(output, &ytInfo); err != nil {
		toolErr := &errors.ExternalToolError{Cause: err, Stderr: "unparseable metadata output"}
		return nil, errors.Wrap(toolErr, errors.CodeExternal, "yt-dlp produced invalid metadata JSON")
	}

	if ytInfo.ID == "" {
		toolErr := &errors.ExternalToolError{Stderr: "metadata document carries no video id"}
		return nil, errors.Wrap(toolErr, errors.CodeExternal, "yt-dlp metadata is missing the video id")
	}

	// Title and Uploader stay empty when upstream omits them; presentation
	// layers choose the display fallback.
	return &model.VideoMetadata{
		ID:       ytInfo.ID,
		Title:    ytInfo.Title,
		Uploader: ytInfo.Uploader,
		Duration: int(math.Floor(ytInfo.Duration)),
	}, nil
}

// asExternalToolError converts a CmdRunner failure into ExternalToolError,
// preserving exit code and captured stderr where available
func asExternalToolError(err error, ctxErr error) *errors.ExternalToolError {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &errors.ExternalToolError{
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(string(exitErr.Stderr)),
			Cause:    err,
		}
	}

	toolErr := &errors.ExternalToolError{ExitCode: -1, Cause: err}
	if errors.Is(ctxErr, context.DeadlineExceeded) {
		toolErr.Stderr = "invocation timed out"
	}
	return toolErr
}

// classifyYtDlpError maps a yt-dlp failure onto a small user-facing taxonomy
// by best-effort substring matching on the error text. yt-dlp publishes no
// structured error codes, so substrings are the only signal available.
func classifyYtDlpError(toolErr *errors.ExternalToolError) string {
	errMsg := toolErr.Stderr
	if errMsg == "" && toolErr.Cause != nil {
		errMsg = toolErr.Cause.Error()
	}

	switch {
	case strings.Contains(errMsg, "Private video"):
		return "video is private and cannot be transcribed"
	case strings.Contains(errMsg, "Video unavailable"),
		strings.Contains(errMsg, "This video is not available"):
		return "video is not available (may be deleted or region-blocked)"
	case strings.Contains(errMsg, "Sign in to confirm your age"),
		strings.Contains(errMsg, "age-restricted"):
		return "video is age-restricted and requires sign-in"
	case strings.Contains(errMsg, "executable file not found"),
		strings.Contains(errMsg, "no such file or directory"):
		return "yt-dlp is not installed or not found in PATH - install yt-dlp and retry"
	case strings.Contains(errMsg, "timed out"):
		return "yt-dlp did not respond in time"
	default:
		return "failed to fetch video metadata with yt-dlp"
	}
}
