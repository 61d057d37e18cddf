package transcript

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/Steve-651/mcp-youtube/internal/errors"
	"github.com/Steve-651/mcp-youtube/internal/model"
)

const fileExt = ".json"

// fileStore implements Store on a directory of pretty-printed JSON files
type fileStore struct {
	dir string
}

// NewStore creates a file-backed Store rooted at dir. The directory is
// created lazily on the first write.
func NewStore(dir string) Store {
	return &fileStore{dir: dir}
}

// Save validates and writes the transcript as indented JSON. Concurrent
// writes to the same key race at the filesystem level; last write wins.
func (s *fileStore) Save(videoID string, t *model.Transcript) (string, error) {
	if videoID == "" {
		return "", errors.New(errors.CodeInvalidArg, "video ID is required")
	}
	if t == nil {
		return "", errors.New(errors.CodeInvalidArg, "transcript is required")
	}
	if err := t.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to create transcript directory")
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to serialize transcript")
	}

	path := s.path(videoID)
	// single whole-file write so a reader never observes partial content
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to write transcript file")
	}

	return path, nil
}

// Get reads, decodes and validates the transcript for a video ID
func (s *fileStore) Get(videoID string) (*model.Transcript, error) {
	if videoID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "video ID is required")
	}

	path := s.path(videoID)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.NotFoundError{VideoID: videoID}
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to read transcript file")
	}

	var t model.Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, &errors.InvalidFormatError{Path: path, Cause: err}
	}
	if err := t.Validate(); err != nil {
		return nil, &errors.InvalidFormatError{Path: path, Cause: err}
	}

	return &t, nil
}

// Exists probes for a persisted transcript without reading content
func (s *fileStore) Exists(videoID string) bool {
	info, err := os.Stat(s.path(videoID))
	return err == nil && !info.IsDir()
}

// List enumerates video IDs with a persisted transcript file
func (s *fileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			// nothing written yet
			return []string{}, nil
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to read transcript directory")
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, fileExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, fileExt))
	}
	return ids, nil
}

func (s *fileStore) path(videoID string) string {
	return filepath.Join(s.dir, videoID+fileExt)
}
