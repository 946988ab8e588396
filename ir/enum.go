package ir

import (
	"github.com/satishbabariya/dragonfly/ast"
)

// Enum is a type checked enum.
type Enum struct {
	Name   string
	Values []string
}

func enumFromAst(astEnum ast.Enum) Enum {
	values := make([]string, len(astEnum.Values))
	copy(values, astEnum.Values)

	return Enum{Name: astEnum.Name, Values: values}
}
