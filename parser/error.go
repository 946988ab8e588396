package parser

import (
	"fmt"
	"strings"
)

// UnexpectedEofError reports that input ran out where a combinator still
// expected a character.
type UnexpectedEofError struct{}

func (e *UnexpectedEofError) Error() string {
	return "unexpected end of input"
}

// UnexpectedCharError reports a character that does not satisfy the
// combinator at the current position. Message is the full human-readable
// description; Actual is the offending byte.
type UnexpectedCharError struct {
	Actual  byte
	Message string
}

func (e *UnexpectedCharError) Error() string {
	return e.Message
}

// UnmatchedChoiceError gathers the failures of every alternative when a
// Choice runs out of options.
type UnmatchedChoiceError struct {
	Errors []error
}

func (e *UnmatchedChoiceError) Error() string {
	messages := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		messages[i] = err.Error()
	}

	return fmt.Sprintf(
		"no alternative matched: %s", strings.Join(messages, "; "),
	)
}

func (e *UnmatchedChoiceError) Unwrap() []error {
	return e.Errors
}

// CustomError carries a grammar-specific message raised outside the
// primitive combinators, for example on a duplicate enum value.
type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError builds a CustomError from a format string.
func NewCustomError(format string, args ...any) *CustomError {
	return &CustomError{Message: fmt.Sprintf(format, args...)}
}
