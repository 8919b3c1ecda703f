// Package clierr defines structured CLI errors with stable codes, optional
// details for JSON output, and exit-code mapping.
package clierr

import "fmt"

// Error codes.
const (
	BoardNotFound = "board_not_found"
	BoardUnknown  = "board_unknown"
	InvalidConfig = "invalid_config"
	InvalidDate   = "invalid_date"
	TaskNotFound  = "task_not_found"
	InternalError = "internal_error"
)

// Error is a structured CLI error.
type Error struct {
	Code    string
	Message string
	Details map[string]any
}

// New creates an Error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// WithDetails attaches structured details and returns the error.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// ExitCode maps the error code to a process exit code.
func (e *Error) ExitCode() int {
	if e.Code == InternalError {
		return 2
	}
	return 1
}

// SilentError signals an exit code without printing anything; the output
// has already been produced.
type SilentError struct {
	Code int
}

// Error implements the error interface.
func (e *SilentError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}
