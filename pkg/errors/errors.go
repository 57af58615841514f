// Package errors provides structured errors for samoyed.
//
// Every error carries a stable code, the sysexits-style process exit
// code the CLI should terminate with, and an optional one-line
// suggestion shown to the user. All three are set at the point where
// the error originates, so nothing downstream has to re-classify
// error text to decide how to exit.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"
	ErrUsage    ErrorCode = "USAGE"

	// Path validation errors
	ErrPathEmpty     ErrorCode = "PATH_EMPTY"
	ErrPathTooLong   ErrorCode = "PATH_TOO_LONG"
	ErrPathTraversal ErrorCode = "PATH_TRAVERSAL"
	ErrPathAbsolute  ErrorCode = "PATH_ABSOLUTE"
	ErrPathChars     ErrorCode = "PATH_INVALID_CHARS"

	// Git errors
	ErrGitNotFound      ErrorCode = "GIT_NOT_FOUND"
	ErrGitConfig        ErrorCode = "GIT_CONFIG_FAILED"
	ErrGitConfigLocked  ErrorCode = "GIT_CONFIG_LOCKED"
	ErrNotGitRepository ErrorCode = "NOT_GIT_REPOSITORY"
	ErrGitPermission    ErrorCode = "GIT_PERMISSION_DENIED"

	// Hook installation errors
	ErrHookIO ErrorCode = "HOOK_IO"

	// Configuration errors
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Dispatch errors
	ErrDispatch ErrorCode = "DISPATCH_FAILED"
)

// SamoyedError represents a structured error with code, exit code and
// an optional user-facing suggestion
type SamoyedError struct {
	Code       ErrorCode
	Message    string
	Suggestion string
	Exit       int
	Wrapped    error
}

// Error implements the error interface
func (e *SamoyedError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SamoyedError) Unwrap() error {
	return e.Wrapped
}

// Is matches two SamoyedErrors by code
func (e *SamoyedError) Is(target error) bool {
	var targetErr *SamoyedError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SamoyedError with the given code and message.
// The exit code defaults from the code's category.
func New(code ErrorCode, message string) *SamoyedError {
	return &SamoyedError{
		Code:    code,
		Message: message,
		Exit:    defaultExitCode(code),
	}
}

// Newf creates a new SamoyedError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SamoyedError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a SamoyedError. A nil err is kept
// as a nil Wrapped field rather than turning the result into a typed
// nil, which would read as non-nil through the error interface.
func Wrap(err error, code ErrorCode, message string) *SamoyedError {
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SamoyedError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithSuggestion attaches a one-line actionable hint shown to the user
func (e *SamoyedError) WithSuggestion(s string) *SamoyedError {
	e.Suggestion = s
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var serr *SamoyedError
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// not a SamoyedError
func GetErrorCode(err error) ErrorCode {
	var serr *SamoyedError
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ErrUnknown
}

// GetSuggestion returns the suggestion from an error, or "" if none
func GetSuggestion(err error) string {
	var serr *SamoyedError
	if errors.As(err, &serr) {
		return serr.Suggestion
	}
	return ""
}
