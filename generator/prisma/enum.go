package prisma

import (
	"fmt"
	"io"

	"github.com/satishbabariya/dragonfly/generator/printer"
	"github.com/satishbabariya/dragonfly/ir"
)

// Enum is an `enum` block.
type Enum struct {
	Name       string
	Values     []string
	Attributes []BlockAttribute
}

// Print renders the enum block, one value per line.
func (e Enum) Print(level int, w io.Writer) error {
	indentOuter := printer.Indent(tabSize, level)
	indentInner := printer.Indent(tabSize, level+1)

	if _, err := fmt.Fprintf(w, "%senum %s {\n", indentOuter, e.Name); err != nil {
		return err
	}

	for _, value := range e.Values {
		if _, err := fmt.Fprintf(w, "%s%s\n", indentInner, value); err != nil {
			return err
		}
	}

	if len(e.Attributes) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}

		for _, attribute := range e.Attributes {
			if err := attribute.Print(level+1, w); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "%s}\n", indentOuter)

	return err
}

// EnumFromIR converts a checked enum declaration into an enum block.
func EnumFromIR(declaration ir.Enum) Enum {
	return Enum{
		Name:   declaration.Name,
		Values: declaration.Values,
	}
}
