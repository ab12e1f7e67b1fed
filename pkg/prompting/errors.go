package prompting

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEndOfInput is returned when the input source is exhausted before a
// complete line is available. It is not recoverable: there is no further input
// with which to retry. Callers should test for it using errors.Is, since it is
// usually wrapped with additional context.
var ErrEndOfInput = errors.New("end of input")

// ParseError indicates that a line of text does not conform to the grammar of
// a target type. Prompters treat it as recoverable: it triggers the error
// message and a retry instead of being returned to the caller.
type ParseError struct {
	// Type is the name of the target type.
	Type string
	// Text is the text that failed to parse.
	Text string
	// Err is the underlying cause, usually strconv.ErrSyntax or
	// strconv.ErrRange.
	Err error
}

// Error implements error.Error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s value %q: %v", e.Type, e.Text, e.Err)
}

// Unwrap returns the underlying cause of the parse failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseFailure returns whether or not an error is (or wraps) a ParseError.
func IsParseFailure(err error) bool {
	var parseError *ParseError
	return errors.As(err, &parseError)
}
