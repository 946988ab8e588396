package typescript

import (
	"fmt"
	"io"
	"sort"

	"github.com/satishbabariya/dragonfly/generator/printer"
	"github.com/satishbabariya/dragonfly/ir"
)

// Interface is an interface declaration.
type Interface struct {
	Identifier     string
	TypeParameters []TypeParameter
	Extends        []ExpressionWithTypeArguments
	Properties     []Property
}

// Property is one property of an interface.
type Property struct {
	Identifier string
	Type       Type
	Optional   bool
}

// ExpressionWithTypeArguments names a type that an interface extends.
type ExpressionWithTypeArguments struct {
	Identifier    string
	TypeArguments []Type
}

// TypeParameter is one generic parameter of an interface.
type TypeParameter struct {
	Identifier  string
	Constraints []Type
}

func (e ExpressionWithTypeArguments) PrintInline(w io.Writer) error {
	if _, err := io.WriteString(w, e.Identifier); err != nil {
		return err
	}

	if len(e.TypeArguments) > 0 {
		if _, err := io.WriteString(w, "<"); err != nil {
			return err
		}

		if err := printer.Intercalate(e.TypeArguments, w, ", "); err != nil {
			return err
		}

		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
	}

	return nil
}

func (t TypeParameter) PrintInline(w io.Writer) error {
	if _, err := io.WriteString(w, t.Identifier); err != nil {
		return err
	}

	if len(t.Constraints) > 0 {
		if _, err := io.WriteString(w, " extends "); err != nil {
			return err
		}

		if err := printer.Intercalate(t.Constraints, w, ", "); err != nil {
			return err
		}
	}

	return nil
}

// Print renders the property as an indented `name: Type;` line. An
// optional property carries a `?` suffix on its name.
func (p Property) Print(level int, w io.Writer) error {
	optional := ""

	if p.Optional {
		optional = "?"
	}

	if _, err := fmt.Fprintf(w, "%s%s%s: ", printer.Indent(tabSize, level), p.Identifier, optional); err != nil {
		return err
	}

	if err := p.Type.PrintInline(w); err != nil {
		return err
	}

	_, err := io.WriteString(w, ";\n")

	return err
}

// Print renders the interface declaration, one property per line.
func (i Interface) Print(level int, w io.Writer) error {
	indent := printer.Indent(tabSize, level)

	if _, err := fmt.Fprintf(w, "%sinterface %s", indent, i.Identifier); err != nil {
		return err
	}

	if len(i.TypeParameters) > 0 {
		if _, err := io.WriteString(w, "<"); err != nil {
			return err
		}

		if err := printer.Intercalate(i.TypeParameters, w, ", "); err != nil {
			return err
		}

		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
	}

	if len(i.Extends) > 0 {
		if _, err := io.WriteString(w, " extends "); err != nil {
			return err
		}

		if err := printer.Intercalate(i.Extends, w, ", "); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, " {\n"); err != nil {
		return err
	}

	for _, property := range i.Properties {
		if err := property.Print(level+1, w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s}\n", indent)

	return err
}

// InterfaceFromIR converts a checked model into an interface
// declaration. Properties appear in a fixed order: scalar fields
// sorted by name, then enum relations, relations to referenced models
// and relations to owned models, each group in declaration order. A
// singular owned relation prints optional.
func InterfaceFromIR(model *ir.Model) Interface {
	declaration := Interface{Identifier: model.Name}

	names := append([]string(nil), model.Fields.Keys()...)
	sort.Strings(names)

	for _, name := range names {
		field, _ := model.Fields.Get(name)

		declaration.Properties = append(declaration.Properties, Property{
			Identifier: name,
			Type:       typeFromField(field),
		})
	}

	for _, name := range model.Enums.Keys() {
		relation, _ := model.Enums.Get(name)

		declaration.Properties = append(declaration.Properties, Property{
			Identifier: name,
			Type:       referenceTo(relation.Name, relation.Cardinality),
		})
	}

	for _, name := range model.Models.Keys() {
		relation, _ := model.Models.Get(name)

		declaration.Properties = append(declaration.Properties, Property{
			Identifier: name,
			Type:       referenceTo(relation.Name, relation.Cardinality),
		})
	}

	for _, name := range model.OwnedModels.Keys() {
		relation, _ := model.OwnedModels.Get(name)

		declaration.Properties = append(declaration.Properties, Property{
			Identifier: name,
			Type:       referenceTo(relation.Name, relation.Cardinality),
			Optional:   relation.Cardinality == ir.CardinalityOne,
		})
	}

	return declaration
}
