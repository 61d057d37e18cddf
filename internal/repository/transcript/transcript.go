package transcript

import (
	"github.com/Steve-651/mcp-youtube/internal/model"
)

// Store defines persistence operations for transcripts. One JSON file per
// video ID; the video ID is the sole storage key.
type Store interface {
	// Save validates and writes the transcript, overwriting any existing
	// record for the same video ID. Returns the storage path.
	Save(videoID string, t *model.Transcript) (string, error)

	// Get reads and validates the transcript for a video ID
	Get(videoID string) (*model.Transcript, error)

	// Exists probes for a persisted transcript without reading it
	Exists(videoID string) bool

	// List enumerates persisted video IDs in filesystem order. Callers
	// needing determinism sort explicitly.
	List() ([]string, error)
}
