package ast

import (
	"fmt"
	"strings"

	"github.com/satishbabariya/dragonfly/parser"
)

// Operator compares a field against a query argument.
type Operator int

const (
	// OperatorContains holds when an array or string field contains
	// the argument.
	OperatorContains Operator = iota
	// OperatorEquals holds when a field equals the argument.
	OperatorEquals
)

func (o Operator) String() string {
	if o == OperatorContains {
		return "contains"
	}

	return "equals"
}

// ParseOperator parses `contains` or `equals`.
func ParseOperator(input string) (Operator, string, error) {
	return parser.Choice(input,
		parser.Tag(keyword("contains"), OperatorContains),
		parser.Tag(keyword("equals"), OperatorEquals),
	)
}

// Path locates a field from the where root, segment by segment.
type Path []string

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	clone := make(Path, len(p))
	copy(clone, p)

	return clone
}

// Condition restricts a query result: the field at Path compares to
// the argument named Argument under Operator.
type Condition struct {
	Path     Path
	Operator Operator
	Argument string
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s $%s", c.Path, c.Operator, c.Argument)
}

// Where is the filter block of a query. Name repeats the schema root.
type Where struct {
	Name       string
	Conditions []Condition
}

// parsePathSegment parses `name {` and the whitespace after it.
func parsePathSegment(input string) (string, string, error) {
	segment, rest, err := parser.CamelCase(input)
	if err != nil {
		return "", "", err
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return "", "", err
	}

	return segment, parser.Spaces(rest), nil
}

// parseConditionTail parses `operator: $name` and the whitespace
// after it.
func parseConditionTail(input string) (Operator, string, string, error) {
	operator, rest, err := ParseOperator(input)
	if err != nil {
		return 0, "", "", err
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.Colon(rest)
	if err != nil {
		return 0, "", "", err
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.Dollar(rest)
	if err != nil {
		return 0, "", "", err
	}

	argument, rest, err := parser.CamelCase(rest)
	if err != nil {
		return 0, "", "", err
	}

	return operator, argument, parser.Spaces(rest), nil
}

// parseConditions walks the nested blocks inside the where root,
// tracking the open segments as the path of each condition it finds.
// It stops at the first brace that closes the root itself.
func parseConditions(input string) ([]Condition, string, error) {
	var path Path

	var conditions []Condition

	for {
		if segment, rest, err := parsePathSegment(input); err == nil {
			path = append(path, segment)
			input = rest

			continue
		}

		if operator, argument, rest, err := parseConditionTail(input); err == nil {
			if len(path) == 0 {
				return nil, "", parser.NewCustomError(
					"A condition must refer to a field.",
				)
			}

			conditions = append(conditions, Condition{
				Path:     path.Clone(),
				Operator: operator,
				Argument: argument,
			})
			input = rest

			continue
		}

		if len(path) > 0 {
			if _, rest, err := parser.BraceClose(input); err == nil {
				path = path[:len(path)-1]
				input = parser.Spaces(rest)

				continue
			}
		}

		return conditions, input, nil
	}
}

// ParseWhere parses the where block of a query:
//
//	where {
//	  image {
//	    tags {
//	      contains: $tag
//	    }
//	  }
//	}
func ParseWhere(input string) (Where, string, error) {
	_, rest, err := parser.Literal(input, "where")
	if err != nil {
		return Where{}, "", err
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return Where{}, "", err
	}

	rest = parser.Spaces(rest)

	name, rest, err := parser.CamelCase(rest)
	if err != nil {
		return Where{}, "", err
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.BraceOpen(rest)
	if err != nil {
		return Where{}, "", err
	}

	rest = parser.Spaces(rest)

	conditions, rest, err := parseConditions(rest)
	if err != nil {
		return Where{}, "", err
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.BraceClose(rest)
	if err != nil {
		return Where{}, "", parser.NewCustomError(
			"Expected closing brace for root node `%s`.", name,
		)
	}

	rest = parser.Spaces(rest)

	_, rest, err = parser.BraceClose(rest)
	if err != nil {
		return Where{}, "", parser.NewCustomError(
			"Expected closing brace for where clause.",
		)
	}

	return Where{Name: name, Conditions: conditions}, rest, nil
}
