package prisma

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/satishbabariya/dragonfly/generator/printer"
	"github.com/satishbabariya/dragonfly/ir"
	"github.com/satishbabariya/dragonfly/ordmap"
)

// Model is a `model` block.
type Model struct {
	Name       string
	Fields     ordmap.Map[Field]
	Attributes []BlockAttribute
}

// InsertField adds a field to the model. The field name must be free.
func (m *Model) InsertField(field Field) error {
	if !m.Fields.Insert(field.Name, field) {
		return DuplicateField(m.Name, field.Name)
	}

	return nil
}

// Print renders the model block. Fields print in ascending name order
// with the names padded to one column and, for fields that carry
// attributes, the types padded to a second column.
func (m *Model) Print(level int, w io.Writer) error {
	indentOuter := printer.Indent(tabSize, level)
	indentInner := printer.Indent(tabSize, level+1)

	if _, err := fmt.Fprintf(w, "%smodel %s {\n", indentOuter, m.Name); err != nil {
		return err
	}

	names := append([]string(nil), m.Fields.Keys()...)
	sort.Strings(names)

	maxNameLength := 0
	maxTypeLength := 0
	types := make(map[string]string, len(names))

	for _, name := range names {
		field, _ := m.Fields.Get(name)

		var cell bytes.Buffer
		if err := field.PrintType(&cell); err != nil {
			return err
		}

		types[name] = cell.String()

		if cell.Len() > maxTypeLength {
			maxTypeLength = cell.Len()
		}

		if len(name) > maxNameLength {
			maxNameLength = len(name)
		}
	}

	maxNameLength++

	for _, name := range names {
		field, _ := m.Fields.Get(name)

		if _, err := fmt.Fprintf(w, "%s%-*s", indentInner, maxNameLength, name); err != nil {
			return err
		}

		if len(field.Attributes) == 0 {
			if _, err := io.WriteString(w, types[name]); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, "%-*s", maxTypeLength, types[name]); err != nil {
				return err
			}

			for _, attribute := range field.Attributes {
				if err := attribute.PrintInline(w); err != nil {
					return err
				}
			}
		}

		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	if len(m.Attributes) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}

		for _, attribute := range m.Attributes {
			if err := attribute.Print(level+1, w); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "%s}\n", indentOuter)

	return err
}

// ModelFromIR converts a checked model into a model block. Standard
// id and createdAt fields come first, then scalar fields, enum
// relations, and model relations in declaration order. Singular
// relations to referenced models carry the foreign key column on this
// side, every other relation leaves the foreign key to the reverse
// pass.
func ModelFromIR(source *ir.Model) (*Model, error) {
	model := &Model{Name: source.Name}

	if err := model.InsertField(IDField()); err != nil {
		return nil, err
	}

	if err := model.InsertField(CreatedAtField()); err != nil {
		return nil, err
	}

	for _, name := range source.Fields.Keys() {
		field, _ := source.Fields.Get(name)

		if err := model.InsertField(fieldFromIR(field)); err != nil {
			return nil, err
		}
	}

	for _, name := range source.Enums.Keys() {
		relation, _ := source.Enums.Get(name)

		modifier := ModifierNone
		if relation.Cardinality == ir.CardinalityMany {
			modifier = ModifierList
		}

		field := Field{
			Name:     name,
			Type:     TypeName(relation.Name),
			Modifier: modifier,
		}

		if err := model.InsertField(field); err != nil {
			return nil, err
		}
	}

	for _, name := range source.Keys() {
		if relation, ok := source.Models.Get(name); ok {
			if err := model.insertReference(name, relation); err != nil {
				return nil, err
			}

			continue
		}

		if relation, ok := source.OwnedModels.Get(name); ok {
			if err := model.insertOwned(name, relation); err != nil {
				return nil, err
			}
		}
	}

	return model, nil
}

// insertReference adds a relation field to a referenced model. The
// singular case becomes the owning side of the relation, with the
// foreign key column next to it.
func (m *Model) insertReference(name string, relation ir.ModelRelation) error {
	if relation.Cardinality == ir.CardinalityMany {
		return m.InsertField(Field{
			Name:     name,
			Type:     TypeName(relation.Name),
			Modifier: ModifierList,
			Attributes: []FieldAttribute{
				relationName(name, m.Name),
			},
		})
	}

	field := Field{
		Name:     name,
		Type:     TypeName(relation.Name),
		Modifier: ModifierOptional,
		Attributes: []FieldAttribute{
			relationFull(name, m.Name, name+"Id"),
		},
	}

	if err := m.InsertField(field); err != nil {
		return err
	}

	return m.InsertField(Field{
		Name:       name + "Id",
		Type:       TypeName("Int"),
		Modifier:   ModifierOptional,
		Attributes: []FieldAttribute{UniqueAttribute()},
	})
}

// insertOwned adds a relation field to an owned model. Both sides of
// the foreign key live on the owned model and are added by the
// reverse pass.
func (m *Model) insertOwned(name string, relation ir.ModelRelation) error {
	modifier := ModifierOptional
	if relation.Cardinality == ir.CardinalityMany {
		modifier = ModifierList
	}

	return m.InsertField(Field{
		Name:     name,
		Type:     TypeName(relation.Name),
		Modifier: modifier,
		Attributes: []FieldAttribute{
			relationName(name, m.Name),
		},
	})
}

// relationName builds `@relation(name: "<field>On<Model>")`.
func relationName(field, model string) FieldAttribute {
	return FieldAttribute{
		Name: "relation",
		Arguments: []Argument{
			{
				Name:  "name",
				Value: String(field + "On" + model),
			},
		},
	}
}

// relationFull builds a relation attribute that also binds the
// foreign key column to the primary key of the target.
func relationFull(field, model, foreignKey string) FieldAttribute {
	return FieldAttribute{
		Name: "relation",
		Arguments: []Argument{
			{
				Name:  "name",
				Value: String(field + "On" + model),
			},
			{
				Name:  "fields",
				Value: Array{Keyword(foreignKey)},
			},
			{
				Name:  "references",
				Value: Array{Keyword("id")},
			},
		},
	}
}
