package ast

import (
	"fmt"
	"strings"

	"github.com/satishbabariya/dragonfly/parser"
)

// Model is a named record of typed fields.
type Model struct {
	Name   string
	Fields []Field
}

func (m Model) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "model %s {\n", m.Name)

	for _, field := range m.Fields {
		fmt.Fprintf(&b, "  %s\n", field)
	}

	b.WriteString("}")

	return b.String()
}

// Field is a single model entry, a camelCase name and a type.
type Field struct {
	Name string
	Type Type
}

func (f Field) String() string {
	return f.Name + ": " + f.Type.String()
}

// ParseField parses `name: Type`.
func ParseField(input string) (Field, string, error) {
	name, rest, err := parser.CamelCase(input)
	if err != nil {
		return Field{}, "", err
	}

	_, rest, err = parser.Colon(rest)
	if err != nil {
		return Field{}, "", err
	}

	rest = parser.Spaces(rest)

	fieldType, rest, err := ParseType(rest)
	if err != nil {
		return Field{}, "", err
	}

	return Field{Name: name, Type: fieldType}, rest, nil
}

// ParseModel parses a model declaration:
//
//	model User {
//	  name: String
//	  pets: [Pet]
//	}
//
// Field names are unique and at least one field is required.
func ParseModel(input string) (Model, string, error) {
	_, rest, err := parser.Literal(input, "model")
	if err != nil {
		return Model{}, "", err
	}

	rest = parser.Spaces(rest)

	name, rest, err := parser.Capitalized(rest)
	if err != nil {
		return Model{}, "", err
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return Model{}, "", err
	}

	rest = parser.Spaces(rest)

	var fields []Field

	seen := make(map[string]struct{})

	for {
		field, after, err := ParseField(rest)
		if err != nil {
			break
		}

		if _, dup := seen[field.Name]; dup {
			return Model{}, "", parser.NewCustomError(
				"Duplicate field name `%s` in model `%s`.", field.Name, name,
			)
		}

		seen[field.Name] = struct{}{}
		fields = append(fields, field)
		rest = parser.Spaces(after)
	}

	if len(fields) == 0 {
		return Model{}, "", parser.NewCustomError(
			"Expected at least one field in model `%s`.", name,
		)
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.BraceClose(rest)
	if err != nil {
		return Model{}, "", err
	}

	return Model{Name: name, Fields: fields}, rest, nil
}
