package errors

import (
	"errors"
	"fmt"
)

// ErrCancelled is the sentinel for a user-declined overwrite. It is a clean
// abort, not a filesystem failure; callers distinguish it with errors.Is
// rather than matching message text.
var ErrCancelled = &ChittyError{
	Code:     ErrCodeUserCancelled,
	Message:  "installation cancelled",
	Stage:    StageInput,
	Severity: SeverityFatal,
}

// ChittyError is the structured error type for the installer.
// It carries the stage and severity needed by the top-level handler.
type ChittyError struct {
	// Code is the unique error code (e.g., "ERR_401_FRAMEWORK_INSTALL").
	Code string

	// Message is the human-readable error message.
	Message string

	// Stage is the pipeline stage the error belongs to.
	Stage Stage

	// Severity distinguishes fatal failures from warnings.
	Severity Severity

	// Suggestion is an actionable hint for the user.
	Suggestion string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *ChittyError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ChittyError) Unwrap() error {
	return e.Cause
}

// Is matches ChittyErrors by code so errors.Is works across wrapping.
func (e *ChittyError) Is(target error) bool {
	if t, ok := target.(*ChittyError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithSuggestion adds an actionable hint. Returns the error for chaining.
func (e *ChittyError) WithSuggestion(suggestion string) *ChittyError {
	e.Suggestion = suggestion
	return e
}

// New creates a ChittyError with the given code and message.
// Stage and severity are derived from the code.
func New(code string, message string, cause error) *ChittyError {
	return &ChittyError{
		Code:     code,
		Message:  message,
		Stage:    stageFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a ChittyError from an existing error, keeping its message.
func Wrap(code string, err error) *ChittyError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// IsWarning reports whether err is a non-fatal ChittyError.
func IsWarning(err error) bool {
	var ce *ChittyError
	if errors.As(err, &ce) {
		return ce.Severity == SeverityWarning
	}
	return false
}

// IsCancelled reports whether err is the user-cancellation outcome.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// GetCode extracts the error code from a ChittyError.
// Returns empty string for other error types.
func GetCode(err error) string {
	var ce *ChittyError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}
