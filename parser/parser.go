// Package parser provides the character-level combinators the schema
// grammar is built from. Every combinator takes the input string and
// returns the parsed value together with the unconsumed remainder; a
// failed combinator returns an error and leaves the input untouched, so
// backtracking falls out of calling the next alternative with the same
// string.
package parser

import (
	"fmt"
	"strings"
)

// Parser is the shape shared by all combinators: value, remainder, error.
type Parser[T any] func(input string) (T, string, error)

// Char consumes exactly the byte want.
func Char(input string, want byte) (byte, string, error) {
	if input == "" {
		return 0, "", &UnexpectedEofError{}
	}

	if input[0] != want {
		return 0, "", &UnexpectedCharError{
			Actual: input[0],
			Message: fmt.Sprintf(
				"Expected character '%c', found '%c'.", want, input[0],
			),
		}
	}

	return want, input[1:], nil
}

// Literal consumes the exact substring want.
func Literal(input, want string) (string, string, error) {
	if input == "" {
		return "", "", &UnexpectedEofError{}
	}

	if !strings.HasPrefix(input, want) {
		return "", "", &UnexpectedCharError{
			Actual:  input[0],
			Message: fmt.Sprintf("Expected literal `%s`.", want),
		}
	}

	return want, input[len(want):], nil
}

// Many applies parse zero or more times. It cannot fail; on the first
// inner failure it returns what was collected and the input as of that
// point.
func Many[T any](input string, parse Parser[T]) ([]T, string) {
	var values []T

	for {
		value, rest, err := parse(input)
		if err != nil {
			return values, input
		}

		values = append(values, value)
		input = rest
	}
}

// Many1 applies parse one or more times, failing with the inner error if
// the first application fails.
func Many1[T any](input string, parse Parser[T]) ([]T, string, error) {
	first, rest, err := parse(input)
	if err != nil {
		return nil, "", err
	}

	values, rest := Many(rest, parse)

	return append([]T{first}, values...), rest, nil
}

// Choice tries each alternative in order and returns the first success.
// When all alternatives fail their errors are gathered into an
// UnmatchedChoiceError.
func Choice[T any](input string, parsers ...Parser[T]) (T, string, error) {
	errs := make([]error, 0, len(parsers))

	for _, parse := range parsers {
		value, rest, err := parse(input)
		if err == nil {
			return value, rest, nil
		}

		errs = append(errs, err)
	}

	var zero T

	return zero, "", &UnmatchedChoiceError{Errors: errs}
}

// Option tries parse once. On failure it reports ok=false and hands back
// the original input.
func Option[T any](input string, parse Parser[T]) (T, string, bool) {
	value, rest, err := parse(input)
	if err != nil {
		var zero T

		return zero, input, false
	}

	return value, rest, true
}

// Between parses the open literal, then parse, then the end literal.
func Between[T any](
	input string,
	open string,
	parse Parser[T],
	end string,
) (T, string, error) {
	var zero T

	_, rest, err := Literal(input, open)
	if err != nil {
		return zero, "", err
	}

	value, rest, err := parse(rest)
	if err != nil {
		return zero, "", err
	}

	_, rest, err = Literal(rest, end)
	if err != nil {
		return zero, "", err
	}

	return value, rest, nil
}

// Map runs parse and applies f to the value.
func Map[T, U any](parse Parser[T], f func(T) U) Parser[U] {
	return func(input string) (U, string, error) {
		value, rest, err := parse(input)
		if err != nil {
			var zero U

			return zero, "", err
		}

		return f(value), rest, nil
	}
}

// Tag runs parse and replaces the value with a constant.
func Tag[T, U any](parse Parser[T], value U) Parser[U] {
	return func(input string) (U, string, error) {
		_, rest, err := parse(input)
		if err != nil {
			var zero U

			return zero, "", err
		}

		return value, rest, nil
	}
}
