// Package typescript renders a checked data model as TypeScript
// declarations: one interface per model and one string enum per enum.
package typescript

import (
	"io"

	"github.com/satishbabariya/dragonfly/ir"
)

// tabSize is the indentation width of the generated TypeScript.
const tabSize = 4

// Index is the full declaration document of a data model. Interfaces
// come before enums, each group in declaration order.
type Index struct {
	Interfaces []Interface
	Enums      []StringEnum
}

// FromIR converts a checked data model into its declaration document.
func FromIR(data *ir.Ir) Index {
	document := Index{}

	for _, name := range data.Models.Keys() {
		model, _ := data.Models.Get(name)

		document.Interfaces = append(document.Interfaces, InterfaceFromIR(model))
	}

	for _, name := range data.Enums.Keys() {
		declaration, _ := data.Enums.Get(name)

		document.Enums = append(document.Enums, EnumFromIR(declaration))
	}

	return document
}

// Print renders the whole document, declarations separated by blank
// lines.
func (i Index) Print(level int, w io.Writer) error {
	first := true

	separate := func() error {
		if first {
			first = false

			return nil
		}

		_, err := io.WriteString(w, "\n")

		return err
	}

	for _, declaration := range i.Interfaces {
		if err := separate(); err != nil {
			return err
		}

		if err := declaration.Print(level, w); err != nil {
			return err
		}
	}

	for _, declaration := range i.Enums {
		if err := separate(); err != nil {
			return err
		}

		if err := declaration.Print(level, w); err != nil {
			return err
		}
	}

	return nil
}
