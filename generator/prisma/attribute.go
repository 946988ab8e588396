package prisma

import (
	"fmt"
	"io"

	"github.com/satishbabariya/dragonfly/generator/printer"
)

// FieldAttribute decorates a single field. It prints inline after the
// field type, starting with a space, and only opens parentheses when
// it has arguments.
type FieldAttribute struct {
	Group     string
	Name      string
	Arguments []Argument
}

func (a FieldAttribute) PrintInline(w io.Writer) error {
	group := ""
	if a.Group != "" {
		group = a.Group + "."
	}

	if _, err := fmt.Fprintf(w, " @%s%s", group, a.Name); err != nil {
		return err
	}

	return printArguments(a.Arguments, w)
}

// BlockAttribute decorates a whole block. It prints on a line of its
// own as `@@name(...)`.
type BlockAttribute struct {
	Group     string
	Name      string
	Arguments []Argument
}

func (a BlockAttribute) Print(level int, w io.Writer) error {
	group := ""
	if a.Group != "" {
		group = a.Group + "."
	}

	indent := printer.Indent(tabSize, level)

	if _, err := fmt.Fprintf(w, "%s@@%s%s", indent, group, a.Name); err != nil {
		return err
	}

	if err := printArguments(a.Arguments, w); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")

	return err
}

// IDAttribute returns the standard `@id` attribute.
func IDAttribute() FieldAttribute {
	return FieldAttribute{Name: "id"}
}

// UniqueAttribute returns the standard `@unique` attribute.
func UniqueAttribute() FieldAttribute {
	return FieldAttribute{Name: "unique"}
}

// DefaultAutoIncrement returns the standard `@default(autoincrement())`
// attribute.
func DefaultAutoIncrement() FieldAttribute {
	return FieldAttribute{
		Name: "default",
		Arguments: []Argument{
			{Value: Function{Name: "autoincrement"}},
		},
	}
}

// DefaultNow returns the standard `@default(now())` attribute.
func DefaultNow() FieldAttribute {
	return FieldAttribute{
		Name: "default",
		Arguments: []Argument{
			{Value: Function{Name: "now"}},
		},
	}
}
