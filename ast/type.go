package ast

import (
	"github.com/satishbabariya/dragonfly/parser"
)

// ScalarKind discriminates the scalar variants.
type ScalarKind int

const (
	ScalarBoolean ScalarKind = iota
	ScalarDateTime
	ScalarFloat
	ScalarInt
	ScalarString
	// ScalarReference names another declared model or enum.
	ScalarReference
	// ScalarOwned names a model embedded in its parent, written `@Name`.
	ScalarOwned
)

// Scalar is a non-array type. Name is set for references and owned
// references only.
type Scalar struct {
	Kind ScalarKind
	Name string
}

func (s Scalar) String() string {
	switch s.Kind {
	case ScalarBoolean:
		return "Boolean"
	case ScalarDateTime:
		return "DateTime"
	case ScalarFloat:
		return "Float"
	case ScalarInt:
		return "Int"
	case ScalarString:
		return "String"
	case ScalarReference:
		return s.Name
	case ScalarOwned:
		return "@" + s.Name
	}

	return ""
}

// Type is a scalar or an array of a scalar. Arrays do not nest.
type Type struct {
	Scalar Scalar
	Array  bool
}

func (t Type) String() string {
	if t.Array {
		return "[" + t.Scalar.String() + "]"
	}

	return t.Scalar.String()
}

func parseOwned(input string) (Scalar, string, error) {
	_, rest, err := parser.At(input)
	if err != nil {
		return Scalar{}, "", err
	}

	name, rest, err := parser.Capitalized(rest)
	if err != nil {
		return Scalar{}, "", err
	}

	return Scalar{Kind: ScalarOwned, Name: name}, rest, nil
}

func parseReference(input string) (Scalar, string, error) {
	name, rest, err := parser.Capitalized(input)
	if err != nil {
		return Scalar{}, "", err
	}

	return Scalar{Kind: ScalarReference, Name: name}, rest, nil
}

// ParseScalar parses one scalar type. The named primitives are tried
// before references, so an input starting with `Int` is always the
// primitive.
func ParseScalar(input string) (Scalar, string, error) {
	scalar, rest, err := parser.Choice(input,
		parser.Tag(keyword("Boolean"), Scalar{Kind: ScalarBoolean}),
		parser.Tag(keyword("DateTime"), Scalar{Kind: ScalarDateTime}),
		parser.Tag(keyword("Float"), Scalar{Kind: ScalarFloat}),
		parser.Tag(keyword("Int"), Scalar{Kind: ScalarInt}),
		parser.Tag(keyword("String"), Scalar{Kind: ScalarString}),
		parseOwned,
		parseReference,
	)
	if err != nil {
		return Scalar{}, "", parser.NewCustomError(
			"expected one of: Boolean, DateTime, Float, Int, String, @<capitalized>, <capitalized>",
		)
	}

	return scalar, rest, nil
}

func parseScalarType(input string) (Type, string, error) {
	scalar, rest, err := ParseScalar(input)
	if err != nil {
		return Type{}, "", err
	}

	return Type{Scalar: scalar}, rest, nil
}

func parseArrayType(input string) (Type, string, error) {
	scalar, rest, err := parser.Between(input, "[", ParseScalar, "]")
	if err != nil {
		return Type{}, "", err
	}

	return Type{Scalar: scalar, Array: true}, rest, nil
}

// ParseType parses a scalar or `[Scalar]` array type.
func ParseType(input string) (Type, string, error) {
	return parser.Choice(input, parseScalarType, parseArrayType)
}
