package ir

import (
	"github.com/satishbabariya/dragonfly/ast"
	"github.com/satishbabariya/dragonfly/ordmap"
)

// Operator compares a condition's field against its argument.
type Operator int

const (
	OperatorEquals Operator = iota
	OperatorContains
)

func (o Operator) String() string {
	if o == OperatorContains {
		return "contains"
	}

	return "equals"
}

func operatorFromAst(operator ast.Operator) Operator {
	if operator == ast.OperatorContains {
		return OperatorContains
	}

	return OperatorEquals
}

// ArgumentKind discriminates the argument type variants.
type ArgumentKind int

const (
	// ArgumentScalar is a primitive argument type.
	ArgumentScalar ArgumentKind = iota
	// ArgumentEnum references a declared enum.
	ArgumentEnum
)

// ArgumentType is the checked type of a query argument. Enum is set
// for enum references, Scalar for primitives.
type ArgumentType struct {
	Kind   ArgumentKind
	Enum   string
	Scalar Type
}

// Argument is a checked query argument.
type Argument struct {
	Name        string
	Type        ArgumentType
	Cardinality Cardinality
}

// argumentFromAst lowers an argument type. Valid types are primitives,
// enum references, and arrays of either; everything else reports false.
func argumentFromAst(astArgument ast.Argument, enumNames map[string]struct{}) (Argument, bool) {
	scalar := astArgument.Type.Scalar

	switch scalar.Kind {
	case ast.ScalarBoolean, ast.ScalarDateTime, ast.ScalarFloat,
		ast.ScalarInt, ast.ScalarString:
		return Argument{
			Name: astArgument.Name,
			Type: ArgumentType{
				Kind:   ArgumentScalar,
				Scalar: scalarType(scalar.Kind),
			},
			Cardinality: cardinality(astArgument.Type.Array),
		}, true
	case ast.ScalarReference:
		if _, ok := enumNames[scalar.Name]; ok {
			return Argument{
				Name: astArgument.Name,
				Type: ArgumentType{
					Kind: ArgumentEnum,
					Enum: scalar.Name,
				},
				Cardinality: cardinality(astArgument.Type.Array),
			}, true
		}
	}

	return Argument{}, false
}

// ReturnType names the model a query returns and how many of it.
type ReturnType struct {
	ModelName   string
	Cardinality Cardinality
}

func returnTypeFromAst(astReturnType ast.ReturnType) ReturnType {
	return ReturnType{
		ModelName:   astReturnType.Name,
		Cardinality: cardinality(astReturnType.Array),
	}
}

// SchemaNode is one entry of a checked query schema.
type SchemaNode struct {
	Name     string
	Children []SchemaNode
	Relation bool
}

// Schema is the checked projection of a query.
type Schema struct {
	Alias string
	Nodes []SchemaNode
}

// Condition restricts a query result. Lhs is the path to a field from
// the returned model, Rhs names an argument.
type Condition struct {
	Lhs      []string
	Operator Operator
	Rhs      string
}

// Where is the checked filter of a query.
type Where struct {
	Alias      string
	Conditions []Condition
}

// Query is a type checked query.
type Query struct {
	Name       string
	ReturnType ReturnType
	Arguments  ordmap.Map[Argument]
	Schema     Schema
	Where      *Where
}

// NewQuery creates a query without arguments, schema nodes, or where
// clause.
func NewQuery(name string, returnType ReturnType, alias string) *Query {
	return &Query{
		Name:       name,
		ReturnType: returnType,
		Schema:     Schema{Alias: alias},
	}
}
