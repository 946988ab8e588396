package ir

import (
	"github.com/satishbabariya/dragonfly/ast"
)

// Type is a scalar field type.
type Type int

const (
	TypeBoolean Type = iota
	TypeDateTime
	TypeFloat
	TypeInt
	TypeString
)

func (t Type) String() string {
	switch t {
	case TypeBoolean:
		return "Boolean"
	case TypeDateTime:
		return "DateTime"
	case TypeFloat:
		return "Float"
	case TypeInt:
		return "Int"
	case TypeString:
		return "String"
	}

	return ""
}

// Cardinality states whether a field or relation holds one value or
// many.
type Cardinality int

const (
	CardinalityOne Cardinality = iota
	CardinalityMany
)

// scalarType maps a primitive scalar kind to its type. Reference and
// owned kinds have no scalar type and are classified elsewhere.
func scalarType(kind ast.ScalarKind) Type {
	switch kind {
	case ast.ScalarBoolean:
		return TypeBoolean
	case ast.ScalarDateTime:
		return TypeDateTime
	case ast.ScalarFloat:
		return TypeFloat
	case ast.ScalarInt:
		return TypeInt
	default:
		return TypeString
	}
}

func cardinality(array bool) Cardinality {
	if array {
		return CardinalityMany
	}

	return CardinalityOne
}
