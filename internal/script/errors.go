package script

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrUnknownCommand is returned for a command name the runner doesn't know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument is returned when a command needs a number and got none.
	ErrMissingArgument = errors.New("missing argument")

	// ErrUnexpectedArgument is returned when a command got more arguments than it takes.
	ErrUnexpectedArgument = errors.New("unexpected argument")

	// ErrInvalidNumber is returned when an argument is not a float.
	ErrInvalidNumber = errors.New("invalid number")
)

// ParseError reports a problem with a single script line.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line, trimmed
	Err  error
}

// Error implements the error interface.
func (pe *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", pe.Line, pe.Text, pe.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (pe *ParseError) Unwrap() error {
	return pe.Err
}

// ValidationError represents one or more problems found while parsing a script.
type ValidationError struct {
	Errors []error
}

// Error implements the error interface.
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	if len(ve.Errors) == 1 {
		return fmt.Sprintf("validation failed: %v", ve.Errors[0])
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "validation failed with %d errors:\n", len(ve.Errors))
	for i, err := range ve.Errors {
		fmt.Fprintf(&buf, "  %d. %v\n", i+1, err)
	}
	return buf.String()
}

// Unwrap returns the underlying errors for use with errors.Is and errors.As.
func (ve *ValidationError) Unwrap() []error {
	return ve.Errors
}

// newValidationError creates a ValidationError from a slice of errors.
// Returns nil if the slice is empty.
func newValidationError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}
