// Package prisma renders a checked data model as a Prisma schema.
// Converting builds one model block per model plus the reverse side
// of every relation, printing lays the blocks out with aligned
// columns so the output matches what prisma format would produce.
package prisma

import (
	"io"
	"strings"

	"github.com/satishbabariya/dragonfly/ir"
	"github.com/satishbabariya/dragonfly/ordmap"
)

// tabSize is the indentation width of a Prisma schema.
const tabSize = 2

// Schema is a complete Prisma schema document.
type Schema struct {
	DataSource *DataSource
	Enums      ordmap.Map[Enum]
	Generators ordmap.Map[Generator]
	Models     ordmap.Map[*Model]
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{}
}

// Print renders the whole document: generators, datasource, enums,
// models, separated by blank lines.
func (s *Schema) Print(level int, w io.Writer) error {
	first := true

	separate := func() error {
		if first {
			first = false

			return nil
		}

		_, err := io.WriteString(w, "\n")

		return err
	}

	for _, name := range s.Generators.Keys() {
		generator, _ := s.Generators.Get(name)

		if err := separate(); err != nil {
			return err
		}

		if err := generator.Print(level, w); err != nil {
			return err
		}
	}

	if s.DataSource != nil {
		if err := separate(); err != nil {
			return err
		}

		if err := s.DataSource.Print(level, w); err != nil {
			return err
		}
	}

	for _, name := range s.Enums.Keys() {
		declaration, _ := s.Enums.Get(name)

		if err := separate(); err != nil {
			return err
		}

		if err := declaration.Print(level, w); err != nil {
			return err
		}
	}

	for _, name := range s.Models.Keys() {
		model, _ := s.Models.Get(name)

		if err := separate(); err != nil {
			return err
		}

		if err := model.Print(level, w); err != nil {
			return err
		}
	}

	return nil
}

// FromIR converts a checked data model into a schema with one block
// per model and enum. A second pass over the models adds the reverse
// side of every relation to its target.
func FromIR(data *ir.Ir) (*Schema, error) {
	schema := NewSchema()

	for _, name := range data.Models.Keys() {
		source, _ := data.Models.Get(name)

		model, err := ModelFromIR(source)
		if err != nil {
			return nil, err
		}

		if !schema.Models.Insert(name, model) {
			return nil, DuplicateModel(name)
		}
	}

	for _, name := range data.Models.Keys() {
		source, _ := data.Models.Get(name)

		if err := schema.addForeignKeys(source); err != nil {
			return nil, err
		}
	}

	for _, name := range data.Enums.Keys() {
		declaration, _ := data.Enums.Get(name)

		if !schema.Enums.Insert(name, EnumFromIR(declaration)) {
			return nil, DuplicateEnum(name)
		}
	}

	return schema, nil
}

// addForeignKeys walks the relations of one source model and adds the
// reverse fields to each target model. The reverse field is named
// after the lowercased source model. Owned relations put the foreign
// key column on the target, referenced singular relations already
// carry it on the source, and referenced list relations need none.
func (s *Schema) addForeignKeys(source *ir.Model) error {
	reverseName := strings.ToLower(source.Name)

	for _, fieldName := range source.Keys() {
		if relation, ok := source.Models.Get(fieldName); ok {
			if relation.Cardinality == ir.CardinalityOne {
				continue
			}

			target, ok := s.Models.Get(relation.Name)
			if !ok {
				return UnknownModel(relation.Name)
			}

			field := Field{
				Name:     reverseName,
				Type:     TypeName(source.Name),
				Modifier: ModifierList,
				Attributes: []FieldAttribute{
					relationName(fieldName, source.Name),
				},
			}

			if err := target.InsertField(field); err != nil {
				return err
			}

			continue
		}

		relation, ok := source.OwnedModels.Get(fieldName)
		if !ok {
			continue
		}

		target, ok := s.Models.Get(relation.Name)
		if !ok {
			return UnknownModel(relation.Name)
		}

		modifier := ModifierNone
		foreignKeyModifier := ModifierNone

		if relation.Cardinality == ir.CardinalityMany {
			modifier = ModifierOptional
			foreignKeyModifier = ModifierOptional
		}

		field := Field{
			Name:     reverseName,
			Type:     TypeName(source.Name),
			Modifier: modifier,
			Attributes: []FieldAttribute{
				relationFull(fieldName, source.Name, reverseName+"Id"),
			},
		}

		if err := target.InsertField(field); err != nil {
			return err
		}

		foreignKey := Field{
			Name:       reverseName + "Id",
			Type:       TypeName("Int"),
			Modifier:   foreignKeyModifier,
			Attributes: []FieldAttribute{UniqueAttribute()},
		}

		if err := target.InsertField(foreignKey); err != nil {
			return err
		}
	}

	return nil
}
