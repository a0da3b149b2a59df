package model

import (
	"errors"
	"fmt"
)

// ExitCode is the demo application's process exit code.
type ExitCode int

const (
	// Unset marks a code that was never assigned.
	Unset ExitCode = -1
)

const (
	NoError ExitCode = iota
	UnknownError
	UserCanceled
)

func (e ExitCode) String() string {
	return fmt.Sprintf("exit code %d", e)
}

func (e ExitCode) Error() string {
	return e.String()
}

// ExitError carries a desired process exit code up through normal error
// returns so cleanup still runs on the way out.
type ExitError struct {
	Code ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %v", e.Code.String(), e.Err)
}

// Unwrap exposes the underlying error.
func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewExitError constructs an ExitError with the provided code and cause.
func NewExitError(code ExitCode, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// ExitCodeFromError extracts the code from err, or UnknownError for errors
// that carry none.
func ExitCodeFromError(err error) (ExitCode, error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, exitErr.Err
	}
	return UnknownError, err
}
