package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is an application-specific error type
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// wraps an error with a code and message
func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Error code constants
const (
	CodeInternal   = "INTERNAL_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInvalidArg = "INVALID_ARGUMENT"
	CodeExternal   = "EXTERNAL_ERROR"
	CodeBadData    = "INVALID_FORMAT" // persisted file failed decode or validation
)

// Is/As re-exports so callers don't need this package and stdlib errors both
var (
	Is = stderrors.Is
	As = stderrors.As
)

// ExternalToolError reports a yt-dlp invocation that exited non-zero or timed out
type ExternalToolError struct {
	ExitCode int
	Stderr   string
	Cause    error
}

func (e *ExternalToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: external tool failed (exit %d): %s", CodeExternal, e.ExitCode, e.Stderr)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: external tool failed (exit %d): %v", CodeExternal, e.ExitCode, e.Cause)
	}
	return fmt.Sprintf("%s: external tool failed (exit %d)", CodeExternal, e.ExitCode)
}

func (e *ExternalToolError) Unwrap() error {
	return e.Cause
}

// NotFoundError reports that no transcript has been persisted for a video ID
type NotFoundError struct {
	VideoID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no transcript found for video %q - run the transcribe operation first", CodeNotFound, e.VideoID)
}

// InvalidFormatError reports a persisted transcript file that failed JSON
// decode or schema validation. The file is left untouched.
type InvalidFormatError struct {
	Path  string
	Cause error
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s: transcript file %s is corrupt or has an unexpected schema: %v", CodeBadData, e.Path, e.Cause)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Cause
}

// ValidationError reports caller-supplied or assembled data that failed
// schema validation before reaching the core
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", CodeInvalidArg, e.Field, e.Reason)
}
