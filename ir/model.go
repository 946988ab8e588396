package ir

import (
	"github.com/satishbabariya/dragonfly/ordmap"
)

// Field is a scalar data field of a model.
type Field struct {
	Name        string
	Type        Type
	Cardinality Cardinality
}

// EnumRelation points a model field at a declared enum.
type EnumRelation struct {
	Name        string
	Cardinality Cardinality
}

// ModelRelation points a model field at a declared model. The bucket
// it lives in distinguishes referenced from owned targets.
type ModelRelation struct {
	Name        string
	Cardinality Cardinality
}

// Model is a type checked model. Every field of the source model lands
// in exactly one of four buckets: scalar fields, enum relations,
// relations to referenced models, and relations to owned models.
type Model struct {
	Name        string
	Fields      ordmap.Map[Field]
	Enums       ordmap.Map[EnumRelation]
	Models      ordmap.Map[ModelRelation]
	OwnedModels ordmap.Map[ModelRelation]

	keys   []string
	keySet map[string]struct{}
}

// NewModel creates an empty model.
func NewModel(name string) *Model {
	return &Model{Name: name, keySet: make(map[string]struct{})}
}

// registerKey claims a field name across all buckets.
func (m *Model) registerKey(key string) error {
	if m.keySet == nil {
		m.keySet = make(map[string]struct{})
	}

	if _, dup := m.keySet[key]; dup {
		return DuplicateModelField(m.Name, key)
	}

	m.keySet[key] = struct{}{}
	m.keys = append(m.keys, key)

	return nil
}

// Keys returns every field name of the model in declaration order,
// regardless of the bucket the field landed in.
func (m *Model) Keys() []string {
	return m.keys
}

// InsertField adds a scalar field.
func (m *Model) InsertField(field Field) error {
	if err := m.registerKey(field.Name); err != nil {
		return err
	}

	m.Fields.Insert(field.Name, field)

	return nil
}

// InsertEnumRelation adds a singular relation to an enum.
func (m *Model) InsertEnumRelation(fieldName, enumName string) error {
	if err := m.registerKey(fieldName); err != nil {
		return err
	}

	m.Enums.Insert(fieldName, EnumRelation{
		Name:        enumName,
		Cardinality: CardinalityOne,
	})

	return nil
}

// InsertEnumsRelation adds an array relation to an enum.
func (m *Model) InsertEnumsRelation(fieldName, enumName string) error {
	if err := m.registerKey(fieldName); err != nil {
		return err
	}

	m.Enums.Insert(fieldName, EnumRelation{
		Name:        enumName,
		Cardinality: CardinalityMany,
	})

	return nil
}

// InsertManyToOne adds a singular relation to a referenced model.
func (m *Model) InsertManyToOne(fieldName, modelName string) error {
	if err := m.registerKey(fieldName); err != nil {
		return err
	}

	m.Models.Insert(fieldName, ModelRelation{
		Name:        modelName,
		Cardinality: CardinalityOne,
	})

	return nil
}

// InsertManyToMany adds an array relation to a referenced model.
func (m *Model) InsertManyToMany(fieldName, modelName string) error {
	if err := m.registerKey(fieldName); err != nil {
		return err
	}

	m.Models.Insert(fieldName, ModelRelation{
		Name:        modelName,
		Cardinality: CardinalityMany,
	})

	return nil
}

// InsertOneToOne adds a singular relation to an owned model.
func (m *Model) InsertOneToOne(fieldName, modelName string) error {
	if err := m.registerKey(fieldName); err != nil {
		return err
	}

	m.OwnedModels.Insert(fieldName, ModelRelation{
		Name:        modelName,
		Cardinality: CardinalityOne,
	})

	return nil
}

// InsertOneToMany adds an array relation to an owned model.
func (m *Model) InsertOneToMany(fieldName, modelName string) error {
	if err := m.registerKey(fieldName); err != nil {
		return err
	}

	m.OwnedModels.Insert(fieldName, ModelRelation{
		Name:        modelName,
		Cardinality: CardinalityMany,
	})

	return nil
}

// Field returns the scalar field with the given name.
func (m *Model) Field(name string) (Field, bool) {
	return m.Fields.Get(name)
}

// EnumRelation returns the enum relation with the given name.
func (m *Model) EnumRelation(name string) (EnumRelation, bool) {
	return m.Enums.Get(name)
}

// ModelRelation returns the model relation with the given name,
// whether the target is owned or referenced.
func (m *Model) ModelRelation(name string) (ModelRelation, bool) {
	if relation, ok := m.OwnedModels.Get(name); ok {
		return relation, true
	}

	return m.Models.Get(name)
}
