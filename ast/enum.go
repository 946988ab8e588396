package ast

import (
	"fmt"
	"strings"

	"github.com/satishbabariya/dragonfly/parser"
)

// Enum is a named set of PascalCase values.
type Enum struct {
	Name   string
	Values []string
}

func (e Enum) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "enum %s {\n", e.Name)

	for _, value := range e.Values {
		fmt.Fprintf(&b, "  %s\n", value)
	}

	b.WriteString("}")

	return b.String()
}

func parseEnumValue(input string) (string, string, error) {
	value, rest, err := parser.PascalCase(input)
	if err != nil {
		return "", "", err
	}

	return value, parser.Spaces(rest), nil
}

// ParseEnum parses an enum declaration:
//
//	enum Color {
//	  Red
//	  Green
//	}
//
// Values are unique and at least one is required.
func ParseEnum(input string) (Enum, string, error) {
	_, rest, err := parser.Literal(input, "enum")
	if err != nil {
		return Enum{}, "", err
	}

	rest = parser.Spaces(rest)

	name, rest, err := parser.PascalCase(rest)
	if err != nil {
		return Enum{}, "", err
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return Enum{}, "", err
	}

	rest = parser.Spaces(rest)

	var values []string

	seen := make(map[string]struct{})

	for {
		value, after, err := parseEnumValue(rest)
		if err != nil {
			break
		}

		if _, dup := seen[value]; dup {
			return Enum{}, "", parser.NewCustomError("Duplicate enum value.")
		}

		seen[value] = struct{}{}
		values = append(values, value)
		rest = after
	}

	if len(values) == 0 {
		return Enum{}, "", parser.NewCustomError("Enum `%s` has no values.", name)
	}

	_, rest, err = parser.BraceClose(rest)
	if err != nil {
		return Enum{}, "", err
	}

	return Enum{Name: name, Values: values}, rest, nil
}
