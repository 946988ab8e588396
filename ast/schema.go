package ast

import (
	"github.com/satishbabariya/dragonfly/parser"
)

// Node is one entry of a query schema. A plain field names a column of
// the current model; a relation names a related model and projects
// nodes of that model in turn.
type Node struct {
	Name     string
	Children []Node
	Relation bool
}

func parseRelationNode(input string) (Node, string, error) {
	name, rest, err := parser.Alphabetics(input)
	if err != nil {
		return Node{}, "", err
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return Node{}, "", err
	}

	rest = parser.Spaces(rest)

	children, rest, err := parser.Many1(rest, func(input string) (Node, string, error) {
		node, after, err := ParseSchemaNode(parser.Spaces(input))
		if err != nil {
			return Node{}, "", err
		}

		return node, parser.Spaces(after), nil
	})
	if err != nil {
		return Node{}, "", err
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.BraceClose(rest)
	if err != nil {
		return Node{}, "", err
	}

	return Node{Name: name, Children: children, Relation: true}, rest, nil
}

func parseFieldNode(input string) (Node, string, error) {
	name, rest, err := parser.CamelCase(input)
	if err != nil {
		return Node{}, "", err
	}

	return Node{Name: name}, rest, nil
}

// ParseSchemaNode parses one schema node, preferring a relation block
// over a bare field.
func ParseSchemaNode(input string) (Node, string, error) {
	return parser.Choice(input, parseRelationNode, parseFieldNode)
}

// Schema is the projected shape of a query result, rooted at the
// returned model.
type Schema struct {
	Name  string
	Nodes []Node
}

// ParseSchema parses the root schema block of a query:
//
//	image {
//	  title
//	  owner {
//	    name
//	  }
//	}
//
// At least one node is required.
func ParseSchema(input string) (Schema, string, error) {
	name, rest, err := parser.Alphabetics(input)
	if err != nil {
		return Schema{}, "", err
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return Schema{}, "", err
	}

	rest = parser.Spaces(rest)

	nodes, rest, err := parser.Many1(rest, func(input string) (Node, string, error) {
		node, after, err := ParseSchemaNode(input)
		if err != nil {
			return Node{}, "", err
		}

		return node, parser.Spaces(after), nil
	})
	if err != nil {
		return Schema{}, "", err
	}

	_, rest, err = parser.BraceClose(rest)
	if err != nil {
		return Schema{}, "", err
	}

	return Schema{Name: name, Nodes: nodes}, rest, nil
}
