package ast

import (
	"github.com/satishbabariya/dragonfly/parser"
)

// Query is a named read operation: arguments, a return type, a schema
// describing the projected fields, and an optional where clause.
type Query struct {
	Name       string
	Arguments  []Argument
	ReturnType ReturnType
	Schema     Schema
	Where      *Where
}

// Argument is a typed query parameter, written `$name: Type`.
type Argument struct {
	Name string
	Type Type
}

func (a Argument) String() string {
	return "$" + a.Name + ": " + a.Type.String()
}

// ReturnType names the model a query returns, or an array of it.
type ReturnType struct {
	Name  string
	Array bool
}

func (r ReturnType) String() string {
	if r.Array {
		return "[" + r.Name + "]"
	}

	return r.Name
}

// parseVariable parses a `$name` argument reference.
func parseVariable(input string) (string, string, error) {
	_, rest, err := parser.Dollar(input)
	if err != nil {
		return "", "", err
	}

	return parser.Alphabetics(rest)
}

// ParseArgument parses `$name: Type`.
func ParseArgument(input string) (Argument, string, error) {
	name, rest, err := parseVariable(input)
	if err != nil {
		return Argument{}, "", err
	}

	_, rest, err = parser.Colon(rest)
	if err != nil {
		return Argument{}, "", err
	}

	rest = parser.Spaces(rest)

	argumentType, rest, err := ParseType(rest)
	if err != nil {
		return Argument{}, "", err
	}

	return Argument{Name: name, Type: argumentType}, rest, nil
}

// parseArguments parses a parenthesized argument list. A missing list
// is an empty list; an empty pair of parentheses is not. Argument
// names are unique.
func parseArguments(input string) ([]Argument, string, error) {
	_, rest, err := parser.ParenOpen(input)
	if err != nil {
		return nil, input, nil
	}

	first, rest, err := ParseArgument(rest)
	if err != nil {
		return nil, "", err
	}

	arguments := []Argument{first}
	names := map[string]struct{}{first.Name: {}}

	for {
		_, afterComma, err := parser.Comma(rest)
		if err != nil {
			break
		}

		argument, after, err := ParseArgument(parser.Spaces(afterComma))
		if err != nil {
			return nil, "", err
		}

		if _, dup := names[argument.Name]; dup {
			return nil, "", parser.NewCustomError(
				"duplicate argument `%s`.", argument.Name,
			)
		}

		names[argument.Name] = struct{}{}
		arguments = append(arguments, argument)
		rest = after
	}

	_, rest, err = parser.ParenClose(rest)
	if err != nil {
		return nil, "", err
	}

	return arguments, rest, nil
}

// ParseReturnType parses the type after the argument list. Only a
// model reference or an array of one is accepted.
func ParseReturnType(input string) (ReturnType, string, error) {
	returnType, rest, err := ParseType(input)
	if err != nil {
		return ReturnType{}, "", err
	}

	rest = parser.Spaces(rest)

	if returnType.Scalar.Kind == ScalarReference {
		return ReturnType{
			Name:  returnType.Scalar.Name,
			Array: returnType.Array,
		}, rest, nil
	}

	return ReturnType{}, "", parser.NewCustomError(
		"Expected return type, found `%s`.", returnType,
	)
}

// ParseQuery parses a query declaration:
//
//	query images($tag: Tag): [Image] {
//	  image {
//	    title
//	  }
//	  where {
//	    image {
//	      tags {
//	        contains: $tag
//	      }
//	    }
//	  }
//	}
func ParseQuery(input string) (Query, string, error) {
	_, rest, err := parser.Literal(input, "query")
	if err != nil {
		return Query{}, "", err
	}

	rest = parser.Spaces(rest)

	name, rest, err := parser.Alphabetics(rest)
	if err != nil {
		return Query{}, "", err
	}

	rest = parser.Spaces(rest)

	arguments, rest, err := parseArguments(rest)
	if err != nil {
		return Query{}, "", err
	}

	_, rest, err = parser.Colon(rest)
	if err != nil {
		return Query{}, "", err
	}

	rest = parser.Spaces(rest)

	returnType, rest, err := ParseReturnType(rest)
	if err != nil {
		return Query{}, "", err
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return Query{}, "", err
	}

	rest = parser.Spaces(rest)

	schema, rest, err := ParseSchema(rest)
	if err != nil {
		return Query{}, "", err
	}

	rest = parser.Spaces(rest)

	query := Query{
		Name:       name,
		Arguments:  arguments,
		ReturnType: returnType,
		Schema:     schema,
	}

	where, rest, ok := parser.Option(rest, ParseWhere)
	if ok {
		query.Where = &where
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.BraceClose(rest)
	if err != nil {
		return Query{}, "", err
	}

	return query, rest, nil
}
