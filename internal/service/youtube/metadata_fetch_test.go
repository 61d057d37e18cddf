package youtube

import (
	"context"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Steve-651/mcp-youtube/internal/errors"
	"github.com/Steve-651/mcp-youtube/internal/model"
)

func TestYoutubeService_FetchMetadata(t *testing.T) {
	tests := []struct {
		name          string
		videoURL      string
		mockSetup     func(*mockCmdRunner)
		wantMetadata  *model.VideoMetadata
		wantError     bool
		errorContains string
	}{
		{
			name:     "valid metadata document",
			videoURL: "https://www.youtube.com/watch?v=abc123",
			mockSetup: func(m *mockCmdRunner) {
				jsonResponse := `{"id": "abc123", "title": "Test Video", "uploader": "Test Channel", "duration": 42.8}`
				m.On("Run", mock.Anything, "yt-dlp", mock.AnythingOfType("[]string")).
					Return([]byte(jsonResponse), nil)
			},
			wantMetadata: &model.VideoMetadata{
				ID:       "abc123",
				Title:    "Test Video",
				Uploader: "Test Channel",
				Duration: 42, // floored to whole seconds
			},
		},
		{
			name:     "missing title and uploader stay empty",
			videoURL: "https://www.youtube.com/watch?v=abc123",
			mockSetup: func(m *mockCmdRunner) {
				jsonResponse := `{"id": "abc123", "duration": 10}`
				m.On("Run", mock.Anything, "yt-dlp", mock.AnythingOfType("[]string")).
					Return([]byte(jsonResponse), nil)
			},
			wantMetadata: &model.VideoMetadata{
				ID:       "abc123",
				Duration: 10,
			},
		},
		{
			name:          "empty URL",
			videoURL:      "",
			mockSetup:     func(m *mockCmdRunner) {},
			wantError:     true,
			errorContains: "video URL is required",
		},
		{
			name:     "invalid JSON output",
			videoURL: "https://www.youtube.com/watch?v=abc123",
			mockSetup: func(m *mockCmdRunner) {
				m.On("Run", mock.Anything, "yt-dlp", mock.AnythingOfType("[]string")).
					Return([]byte("WARNING: not json"), nil)
			},
			wantError:     true,
			errorContains: "invalid metadata JSON",
		},
		{
			name:     "metadata without video id",
			videoURL: "https://www.youtube.com/watch?v=abc123",
			mockSetup: func(m *mockCmdRunner) {
				m.On("Run", mock.Anything, "yt-dlp", mock.AnythingOfType("[]string")).
					Return([]byte(`{"title": "t"}`), nil)
			},
			wantError:     true,
			errorContains: "missing the video id",
		},
		{
			name:     "private video classified",
			videoURL: "https://www.youtube.com/watch?v=abc123",
			mockSetup: func(m *mockCmdRunner) {
				exitErr := &exec.ExitError{
					ProcessState: &os.ProcessState{},
					Stderr:       []byte("ERROR: Private video. Sign in if you've been granted access"),
				}
				m.On("Run", mock.Anything, "yt-dlp", mock.AnythingOfType("[]string")).
					Return([]byte{}, exitErr)
			},
			wantError:     true,
			errorContains: "video is private",
		},
		{
			name:     "unavailable video classified",
			videoURL: "https://www.youtube.com/watch?v=abc123",
			mockSetup: func(m *mockCmdRunner) {
				exitErr := &exec.ExitError{
					ProcessState: &os.ProcessState{},
					Stderr:       []byte("ERROR: Video unavailable"),
				}
				m.On("Run", mock.Anything, "yt-dlp", mock.AnythingOfType("[]string")).
					Return([]byte{}, exitErr)
			},
			wantError:     true,
			errorContains: "not available",
		},
		{
			name:     "tool not installed classified",
			videoURL: "https://www.youtube.com/watch?v=abc123",
			mockSetup: func(m *mockCmdRunner) {
				m.On("Run", mock.Anything, "yt-dlp", mock.AnythingOfType("[]string")).
					Return([]byte{}, &exec.Error{Name: "yt-dlp", Err: exec.ErrNotFound})
			},
			wantError:     true,
			errorContains: "not found in PATH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRunner := new(mockCmdRunner)
			tt.mockSetup(mockRunner)

			svc := NewServiceWithCmdRunner(mockRunner, Options{WorkDir: t.TempDir()})
			got, err := svc.FetchMetadata(context.Background(), tt.videoURL)

			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantMetadata, got)
			}

			mockRunner.AssertExpectations(t)
		})
	}
}

func TestYoutubeService_FetchMetadata_CarriesExitCodeAndStderr(t *testing.T) {
	mockRunner := new(mockCmdRunner)
	exitErr := &exec.ExitError{
		ProcessState: &os.ProcessState{},
		Stderr:       []byte("ERROR: Video unavailable"),
	}
	mockRunner.On("Run", mock.Anything, "yt-dlp", mock.AnythingOfType("[]string")).
		Return([]byte{}, exitErr)

	svc := NewServiceWithCmdRunner(mockRunner, Options{WorkDir: t.TempDir()})
	_, err := svc.FetchMetadata(context.Background(), "https://www.youtube.com/watch?v=abc123")
	require.Error(t, err)

	var toolErr *errors.ExternalToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, "ERROR: Video unavailable", toolErr.Stderr)
}
