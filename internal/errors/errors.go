package errors

import (
	stderrors "errors"
	"fmt"
)

// GrepError is the structured error type for minigrep.
// It carries enough context for logging, exit codes, and user presentation.
type GrepError struct {
	// Code is the unique error code (e.g., "ERR_301_FILE_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is derived from the code (Usage, Config, IO, Internal).
	Category Category

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable hint for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *GrepError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GrepError) Unwrap() error {
	return e.Cause
}

// Is matches another GrepError by code, so errors.Is works with sentinel
// values built by New.
func (e *GrepError) Is(target error) bool {
	if t, ok := target.(*GrepError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
func (e *GrepError) WithDetail(key, value string) *GrepError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *GrepError) WithSuggestion(suggestion string) *GrepError {
	e.Suggestion = suggestion
	return e
}

// New creates a GrepError. The category is derived from the code.
func New(code string, message string, cause error) *GrepError {
	return &GrepError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a GrepError from an existing error, reusing its message.
func Wrap(code string, err error) *GrepError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// UsageError creates an error for a malformed invocation.
func UsageError(code string, message string) *GrepError {
	return New(code, message, nil).
		WithSuggestion("Usage: minigrep [flags] <query> <file>")
}

// ConfigError creates a settings-related error.
func ConfigError(message string, cause error) *GrepError {
	return New(ErrCodeSettingsInvalid, message, cause)
}

// IOError creates a generic read failure.
func IOError(message string, cause error) *GrepError {
	return New(ErrCodeFileRead, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *GrepError {
	return New(ErrCodeInternal, message, cause)
}

// As finds the first GrepError in err's chain.
func As(err error) (*GrepError, bool) {
	var ge *GrepError
	if stderrors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// GetCode extracts the error code, or "" if err carries none.
func GetCode(err error) string {
	if ge, ok := As(err); ok {
		return ge.Code
	}
	return ""
}

// GetCategory extracts the category, or "" if err carries none.
func GetCategory(err error) Category {
	if ge, ok := As(err); ok {
		return ge.Category
	}
	return ""
}

// IsUsage reports whether err is a usage error.
func IsUsage(err error) bool {
	return GetCategory(err) == CategoryUsage
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsUsage(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}
