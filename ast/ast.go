// Package ast defines the surface syntax tree of the schema language
// together with the parse entry points that build it. A document is a
// sequence of enum, model, and query declarations in any order; names
// are unique per declaration kind.
package ast

import (
	"github.com/satishbabariya/dragonfly/parser"
)

// Ast is a parsed source document in declaration order.
type Ast struct {
	Enums   []Enum
	Models  []Model
	Queries []Query
}

// Parse consumes a whole source document. An empty document yields an
// empty Ast. The remainder is empty on success; the first failing
// declaration aborts the parse.
func Parse(input string) (Ast, string, error) {
	var ast Ast

	enums := make(map[string]struct{})
	models := make(map[string]struct{})
	queries := make(map[string]struct{})

	for input != "" {
		rest := parser.Spaces(input)

		if model, after, err := ParseModel(rest); err == nil {
			if _, dup := models[model.Name]; dup {
				return Ast{}, "", parser.NewCustomError(
					"Duplicate model name `%s`", model.Name,
				)
			}

			models[model.Name] = struct{}{}
			ast.Models = append(ast.Models, model)
			input = after
		} else if query, after, err := ParseQuery(rest); err == nil {
			if _, dup := queries[query.Name]; dup {
				return Ast{}, "", parser.NewCustomError(
					"Duplicate query name `%s`", query.Name,
				)
			}

			queries[query.Name] = struct{}{}
			ast.Queries = append(ast.Queries, query)
			input = after
		} else if enum, after, err := ParseEnum(rest); err == nil {
			if _, dup := enums[enum.Name]; dup {
				return Ast{}, "", parser.NewCustomError(
					"Duplicate enum name `%s`", enum.Name,
				)
			}

			enums[enum.Name] = struct{}{}
			ast.Enums = append(ast.Enums, enum)
			input = after
		} else {
			return Ast{}, "", parser.NewCustomError(
				"Expected an enum, model, or query.",
			)
		}

		input = parser.Spaces(input)
	}

	return ast, parser.Spaces(input), nil
}

// keyword adapts a literal to a Parser so it can sit inside a Choice.
func keyword(want string) parser.Parser[string] {
	return func(input string) (string, string, error) {
		return parser.Literal(input, want)
	}
}
