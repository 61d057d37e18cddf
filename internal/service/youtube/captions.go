package youtube

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Steve-651/mcp-youtube/internal/captions"
	"github.com/Steve-651/mcp-youtube/internal/errors"
	"github.com/Steve-651/mcp-youtube/internal/model"
)

// subtitleLanguages restricts extraction to English variants (en, en-US,
// en-GB, auto-generated en, ...)
const subtitleLanguages = "en.*,en"

// FetchCaptions fetches auto-generated and manual subtitles for a video
// using yt-dlp and parses them into transcript segments
func (s *youtubeService) FetchCaptions(ctx context.Context, videoURL, videoID string) (*CaptionResult, error) {
	// Input validation
	if videoURL == "" {
		return nil, errors.New(errors.CodeInvalidArg, "video URL is required")
	}
	if videoID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "video ID is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.CaptionTimeout)
	defer cancel()

	// The temp filename carries a per-invocation token so two concurrent
	// fetches of the same video never race on the same file.
	prefix := fmt.Sprintf("captions-%s-%s", videoID, uuid.NewString()[:8])

	args := []string{
		"--write-auto-subs",
		"--write-subs",
		"--sub-langs", subtitleLanguages,
		"--sub-format", "vtt",
		"--skip-download",
		"--no-playlist",
		"--output", filepath.Join(s.opts.WorkDir, prefix),
		videoURL,
	}

	// Temp files are removed whether or not parsing succeeds
	defer s.removeCaptionFiles(prefix)

	_, err := s.cmdRunner.Run(ctx, s.opts.Binary, args...)
	if err != nil {
		toolErr := asExternalToolError(err, ctx.Err())
		if isNoSubtitles(toolErr.Stderr) {
			// A video without subtitles is a distinguished non-error outcome
			return &CaptionResult{
				Segments: []model.TranscriptSegment{},
				Language: model.LanguageUnknown,
			}, nil
		}
		return nil, errors.Wrap(toolErr, errors.CodeExternal, classifyYtDlpError(toolErr))
	}

	// Locate the produced subtitle file by prefix match. yt-dlp exits zero
	// and writes nothing when the requested languages don't exist, so an
	// empty scan also means no captions.
	captionPath, err := s.findCaptionFile(prefix)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to locate caption file produced by yt-dlp")
	}
	if captionPath == "" {
		return &CaptionResult{
			Segments: []model.TranscriptSegment{},
			Language: model.LanguageUnknown,
		}, nil
	}

	content, err := os.ReadFile(captionPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to read caption file")
	}

	segments := captions.ParseWebVTT(string(content))
	return &CaptionResult{
		Segments: segments,
		Language: captions.DetectLanguage(segments),
	}, nil
}

// findCaptionFile scans the work directory for a subtitle file written under
// the invocation prefix. Returns "" when yt-dlp produced none.
func (s *youtubeService) findCaptionFile(prefix string) (string, error) {
	entries, err := os.ReadDir(s.opts.WorkDir)
	if err != nil {
		return "", fmt.Errorf("failed to read work directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, prefix) && filepath.Ext(name) == ".vtt" {
			return filepath.Join(s.opts.WorkDir, name), nil
		}
	}
	return "", nil
}

// removeCaptionFiles deletes every temp file the invocation produced.
// Best-effort: a leak here must not fail the extraction.
func (s *youtubeService) removeCaptionFiles(prefix string) {
	entries, err := os.ReadDir(s.opts.WorkDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			os.Remove(filepath.Join(s.opts.WorkDir, entry.Name()))
		}
	}
}

// isNoSubtitles detects yt-dlp's "no subtitles exist" report in stderr
func isNoSubtitles(stderr string) bool {
	msg := strings.ToLower(stderr)
	return strings.Contains(msg, "no subtitles") ||
		strings.Contains(msg, "subtitles not available")
}
