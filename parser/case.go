package parser

import (
	"errors"
	"fmt"
)

// Capitalized parses one uppercase letter followed by any run of letters,
// e.g. one segment of a PascalCase identifier.
func Capitalized(input string) (string, string, error) {
	head, rest, err := Uppercase(input)
	if err != nil {
		if input == "" {
			return "", "", &UnexpectedEofError{}
		}

		return "", "", &UnexpectedCharError{
			Actual: input[0],
			Message: fmt.Sprintf(
				"Expected capitalized identifier to start with uppercase "+
					"character, found '%c'.", input[0],
			),
		}
	}

	i := 0
	for i < len(rest) && isAlphabetic(rest[i]) {
		i++
	}

	return string(head) + rest[:i], rest[i:], nil
}

// PascalCase parses one or more Capitalized segments.
func PascalCase(input string) (string, string, error) {
	segments, rest, err := Many1(input, Capitalized)
	if err != nil {
		if input == "" {
			return "", "", &UnexpectedEofError{}
		}

		return "", "", &UnexpectedCharError{
			Actual: input[0],
			Message: fmt.Sprintf(
				"Expected segment of PascalCase identifier to start with "+
					"uppercase character, found '%c'.", input[0],
			),
		}
	}

	name := ""
	for _, segment := range segments {
		name += segment
	}

	return name, rest, nil
}

// CamelCase parses one or more lowercase letters followed by any number
// of Capitalized segments.
func CamelCase(input string) (string, string, error) {
	head, rest, err := Many1(input, Lowercase)
	if err != nil {
		var unexpected *UnexpectedCharError
		if errors.As(err, &unexpected) {
			if input == "" {
				return "", "", &UnexpectedEofError{}
			}

			return "", "", &UnexpectedCharError{
				Actual: input[0],
				Message: fmt.Sprintf(
					"Expected camelCase identifier to start with lowercase "+
						"character, found '%c'.", input[0],
				),
			}
		}

		return "", "", err
	}

	name := string(head)

	segments, rest := Many(rest, Capitalized)
	for _, segment := range segments {
		name += segment
	}

	return name, rest, nil
}
