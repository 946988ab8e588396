package typescript

import (
	"fmt"
	"io"

	"github.com/satishbabariya/dragonfly/generator/printer"
	"github.com/satishbabariya/dragonfly/ir"
)

// StringEnum is an enum declaration whose members are all string
// valued.
type StringEnum struct {
	Identifier string
	Variants   []Variant
}

// Variant is one member of a string enum.
type Variant struct {
	Name  string
	Value string
}

// Print renders the variant as an indented `Name = "Value",` line.
func (v Variant) Print(level int, w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s%s = \"%s\",\n", printer.Indent(tabSize, level), v.Name, v.Value)

	return err
}

// Print renders the enum declaration, one variant per line.
func (e StringEnum) Print(level int, w io.Writer) error {
	indent := printer.Indent(tabSize, level)

	if _, err := fmt.Fprintf(w, "%senum %s {\n", indent, e.Identifier); err != nil {
		return err
	}

	for _, variant := range e.Variants {
		if err := variant.Print(level+1, w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s}\n", indent)

	return err
}

// EnumFromIR converts a checked enum declaration into a string enum.
// Each variant reuses the declared value as its name.
func EnumFromIR(declaration ir.Enum) StringEnum {
	stringEnum := StringEnum{Identifier: declaration.Name}

	for _, value := range declaration.Values {
		stringEnum.Variants = append(stringEnum.Variants, Variant{Name: value, Value: value})
	}

	return stringEnum
}
