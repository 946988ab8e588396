package prisma

import (
	"io"

	"github.com/satishbabariya/dragonfly/generator/printer"
	"github.com/satishbabariya/dragonfly/ir"
)

// Modifier marks a field as required, optional, or a list.
type Modifier int

const (
	// ModifierNone is a required field.
	ModifierNone Modifier = iota
	// ModifierOptional renders a `?` suffix.
	ModifierOptional
	// ModifierList renders a `[]` suffix.
	ModifierList
)

// FieldType is the type position of a field line, either a plain type
// name or a function call.
type FieldType interface {
	printer.InlinePrinter
	fieldType()
}

// TypeName is a plain type name.
type TypeName string

func (TypeName) fieldType() {}
func (Function) fieldType() {}

func (t TypeName) PrintInline(w io.Writer) error {
	_, err := io.WriteString(w, string(t))

	return err
}

// Field is a single line inside a model block.
type Field struct {
	Name       string
	Type       FieldType
	Modifier   Modifier
	Attributes []FieldAttribute
}

// PrintType renders the type cell of the field, including the
// modifier suffix.
func (f Field) PrintType(w io.Writer) error {
	if err := f.Type.PrintInline(w); err != nil {
		return err
	}

	switch f.Modifier {
	case ModifierOptional:
		_, err := io.WriteString(w, "?")

		return err
	case ModifierList:
		_, err := io.WriteString(w, "[]")

		return err
	default:
		return nil
	}
}

// IDField returns the standard `id Int @id @default(autoincrement())`
// field every model carries.
func IDField() Field {
	return Field{
		Name: "id",
		Type: TypeName("Int"),
		Attributes: []FieldAttribute{
			IDAttribute(),
			DefaultAutoIncrement(),
		},
	}
}

// CreatedAtField returns the standard `createdAt DateTime
// @default(now())` field every model carries.
func CreatedAtField() Field {
	return Field{
		Name:       "createdAt",
		Type:       TypeName("DateTime"),
		Attributes: []FieldAttribute{DefaultNow()},
	}
}

func fieldFromIR(field ir.Field) Field {
	modifier := ModifierNone
	if field.Cardinality == ir.CardinalityMany {
		modifier = ModifierList
	}

	return Field{
		Name:     field.Name,
		Type:     TypeName(field.Type.String()),
		Modifier: modifier,
	}
}
