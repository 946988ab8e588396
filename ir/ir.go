// Package ir holds the intermediate representation of a source
// document. Lowering an AST into the IR performs the type checking:
// every name is resolved, relations are lifted out of fields, and
// query schemas and conditions are validated against the models they
// draw from.
package ir

import (
	"strings"

	"github.com/satishbabariya/dragonfly/ast"
	"github.com/satishbabariya/dragonfly/ordmap"
)

// Ir is the type checked form of a source document.
type Ir struct {
	Models  ordmap.Map[*Model]
	Enums   ordmap.Map[Enum]
	Queries ordmap.Map[*Query]
}

// New creates an empty IR.
func New() *Ir {
	return &Ir{}
}

// InsertModel adds a model, rejecting duplicates.
func (i *Ir) InsertModel(model *Model) error {
	if !i.Models.Insert(model.Name, model) {
		return DuplicateModel(model.Name)
	}

	return nil
}

// InsertEnum adds an enum, rejecting duplicates.
func (i *Ir) InsertEnum(enum Enum) error {
	if !i.Enums.Insert(enum.Name, enum) {
		return DuplicateEnum(enum.Name)
	}

	return nil
}

// InsertQuery adds a query, rejecting duplicates.
func (i *Ir) InsertQuery(query *Query) error {
	if !i.Queries.Insert(query.Name, query) {
		return DuplicateQuery(query.Name)
	}

	return nil
}

// FieldAt resolves a path to a scalar field. Intermediate segments
// traverse model relations, owned or referenced; the final segment
// must name a scalar field.
func (i *Ir) FieldAt(modelName string, path []string) (Field, bool) {
	model, ok := i.Models.Get(modelName)
	if !ok {
		return Field{}, false
	}

	for index, segment := range path {
		if index == len(path)-1 {
			return model.Field(segment)
		}

		relation, ok := model.ModelRelation(segment)
		if !ok {
			return Field{}, false
		}

		next, ok := i.Models.Get(relation.Name)
		if !ok {
			return Field{}, false
		}

		model = next
	}

	return Field{}, false
}

// EnumRelationAt resolves a path to an enum relation the same way
// FieldAt resolves scalar fields.
func (i *Ir) EnumRelationAt(modelName string, path []string) (EnumRelation, bool) {
	model, ok := i.Models.Get(modelName)
	if !ok {
		return EnumRelation{}, false
	}

	for index, segment := range path {
		if index == len(path)-1 {
			return model.EnumRelation(segment)
		}

		relation, ok := model.ModelRelation(segment)
		if !ok {
			return EnumRelation{}, false
		}

		next, ok := i.Models.Get(relation.Name)
		if !ok {
			return EnumRelation{}, false
		}

		model = next
	}

	return EnumRelation{}, false
}

// FromAst lowers a parsed document into the IR, type checking it in
// the process. The first failure in document order aborts the
// lowering.
func FromAst(document ast.Ast) (*Ir, error) {
	enumNames := make(map[string]struct{}, len(document.Enums))
	for _, astEnum := range document.Enums {
		enumNames[astEnum.Name] = struct{}{}
	}

	modelNames := make(map[string]struct{}, len(document.Models))
	for _, astModel := range document.Models {
		modelNames[astModel.Name] = struct{}{}
	}

	ir := New()

	for _, astModel := range document.Models {
		if err := ir.addModel(astModel, enumNames, modelNames); err != nil {
			return nil, err
		}
	}

	for _, astEnum := range document.Enums {
		if err := ir.InsertEnum(enumFromAst(astEnum)); err != nil {
			return nil, err
		}
	}

	for _, astQuery := range document.Queries {
		if err := ir.addQuery(astQuery, enumNames); err != nil {
			return nil, err
		}
	}

	return ir, nil
}

// addModel classifies each field of an AST model into the
// corresponding bucket and inserts the result.
func (i *Ir) addModel(
	astModel ast.Model,
	enumNames map[string]struct{},
	modelNames map[string]struct{},
) error {
	if len(astModel.Fields) == 0 {
		return EmptyModel(astModel.Name)
	}

	model := NewModel(astModel.Name)

	for _, field := range astModel.Fields {
		var err error

		scalar := field.Type.Scalar

		switch scalar.Kind {
		case ast.ScalarBoolean, ast.ScalarDateTime, ast.ScalarFloat,
			ast.ScalarInt, ast.ScalarString:
			err = model.InsertField(Field{
				Name:        field.Name,
				Type:        scalarType(scalar.Kind),
				Cardinality: cardinality(field.Type.Array),
			})
		case ast.ScalarReference:
			if _, ok := enumNames[scalar.Name]; ok {
				if field.Type.Array {
					err = model.InsertEnumsRelation(field.Name, scalar.Name)
				} else {
					err = model.InsertEnumRelation(field.Name, scalar.Name)
				}
			} else if _, ok := modelNames[scalar.Name]; ok {
				if field.Type.Array {
					err = model.InsertManyToMany(field.Name, scalar.Name)
				} else {
					err = model.InsertManyToOne(field.Name, scalar.Name)
				}
			} else {
				err = UnknownModelFieldType(
					model.Name, field.Name, field.Type.String(),
				)
			}
		case ast.ScalarOwned:
			if _, ok := modelNames[scalar.Name]; ok {
				if field.Type.Array {
					err = model.InsertOneToMany(field.Name, scalar.Name)
				} else {
					err = model.InsertOneToOne(field.Name, scalar.Name)
				}
			} else {
				err = UnknownModelFieldType(
					model.Name, field.Name, field.Type.String(),
				)
			}
		}

		if err != nil {
			return err
		}
	}

	return i.InsertModel(model)
}

// addQuery checks one AST query and inserts the result. Checks run in
// a fixed order: where root name, return type, argument types, schema
// paths, condition operands, unused arguments.
func (i *Ir) addQuery(astQuery ast.Query, enumNames map[string]struct{}) error {
	if astQuery.Where != nil && astQuery.Schema.Name != astQuery.Where.Name {
		return InvalidQueryWhereName(
			astQuery.Name, astQuery.Schema.Name, astQuery.Where.Name,
		)
	}

	returnType, err := i.queryReturnType(astQuery.Name, astQuery.ReturnType)
	if err != nil {
		return err
	}

	query := NewQuery(astQuery.Name, returnType, astQuery.Schema.Name)

	for _, astArgument := range astQuery.Arguments {
		argument, ok := argumentFromAst(astArgument, enumNames)
		if !ok {
			return InvalidQueryArgumentType(
				astQuery.Name, astArgument.Name, astArgument.Type.String(),
			)
		}

		query.Arguments.Insert(argument.Name, argument)
	}

	schema, err := i.querySchema(astQuery.Name, astQuery.Schema, returnType.ModelName)
	if err != nil {
		return err
	}

	query.Schema = schema

	used := make(map[string]struct{})

	if astQuery.Where != nil {
		conditions := make([]Condition, 0, len(astQuery.Where.Conditions))

		for _, astCondition := range astQuery.Where.Conditions {
			condition, err := i.queryCondition(astQuery.Name, query, astCondition)
			if err != nil {
				return err
			}

			used[condition.Rhs] = struct{}{}
			conditions = append(conditions, condition)
		}

		query.Where = &Where{
			Alias:      astQuery.Where.Name,
			Conditions: conditions,
		}
	}

	for _, name := range query.Arguments.Keys() {
		if _, ok := used[name]; !ok {
			return UnusedQueryArgument(astQuery.Name, name)
		}
	}

	return i.InsertQuery(query)
}

// queryReturnType resolves the return type against the declared
// models.
func (i *Ir) queryReturnType(
	queryName string,
	astReturnType ast.ReturnType,
) (ReturnType, error) {
	returnType := returnTypeFromAst(astReturnType)

	if !i.Models.Has(returnType.ModelName) {
		return ReturnType{}, UndefinedQueryReturnType(
			queryName, returnType.ModelName,
		)
	}

	return returnType, nil
}

// querySchema checks every leaf of the schema tree against the
// returned model.
func (i *Ir) querySchema(
	queryName string,
	astSchema ast.Schema,
	modelName string,
) (Schema, error) {
	if len(astSchema.Nodes) == 0 {
		return Schema{}, EmptyQuerySchema(queryName)
	}

	nodes := make([]SchemaNode, 0, len(astSchema.Nodes))

	for _, astNode := range astSchema.Nodes {
		node, err := i.querySchemaNode(queryName, modelName, astNode, nil)
		if err != nil {
			return Schema{}, err
		}

		nodes = append(nodes, node)
	}

	return Schema{Alias: astSchema.Name, Nodes: nodes}, nil
}

// querySchemaNode checks one node. Leaves resolve from the root model
// through the full path so errors carry the dotted location.
func (i *Ir) querySchemaNode(
	queryName string,
	modelName string,
	astNode ast.Node,
	path []string,
) (SchemaNode, error) {
	if !astNode.Relation {
		full := make([]string, 0, len(path)+1)
		full = append(full, path...)
		full = append(full, astNode.Name)

		if _, ok := i.FieldAt(modelName, full); !ok {
			return SchemaNode{}, UndefinedQueryField(
				queryName, strings.Join(full, "."),
			)
		}

		return SchemaNode{Name: astNode.Name}, nil
	}

	childPath := make([]string, 0, len(path)+1)
	childPath = append(childPath, path...)
	childPath = append(childPath, astNode.Name)

	children := make([]SchemaNode, 0, len(astNode.Children))

	for _, astChild := range astNode.Children {
		child, err := i.querySchemaNode(queryName, modelName, astChild, childPath)
		if err != nil {
			return SchemaNode{}, err
		}

		children = append(children, child)
	}

	return SchemaNode{Name: astNode.Name, Children: children, Relation: true}, nil
}

// queryCondition checks one condition: the argument must be declared,
// the path must resolve, and the operands must be compatible under the
// operator.
func (i *Ir) queryCondition(
	queryName string,
	query *Query,
	astCondition ast.Condition,
) (Condition, error) {
	argument, ok := query.Arguments.Get(astCondition.Argument)
	if !ok {
		return Condition{}, UndefinedQueryArgument(queryName, astCondition.Argument)
	}

	modelName := query.ReturnType.ModelName
	path := []string(astCondition.Path)

	field, isField := i.FieldAt(modelName, path)
	relation, isEnum := i.EnumRelationAt(modelName, path)

	if !isField && !isEnum {
		return Condition{}, UndefinedQueryField(
			queryName, astCondition.Path.String(),
		)
	}

	compatible := false
	if isField {
		compatible = fieldCompatible(field, astCondition.Operator, argument)
	} else {
		compatible = enumCompatible(relation, astCondition.Operator, argument)
	}

	if !compatible {
		return Condition{}, InvalidQueryCondition(
			queryName,
			astCondition.Path.String(),
			astCondition.Argument,
			astCondition.Operator.String(),
		)
	}

	lhs := make([]string, len(astCondition.Path))
	copy(lhs, astCondition.Path)

	return Condition{
		Lhs:      lhs,
		Operator: operatorFromAst(astCondition.Operator),
		Rhs:      astCondition.Argument,
	}, nil
}

// fieldCompatible holds when a scalar field can be compared to an
// argument: equals needs two singular values of the same type,
// contains needs an array and one element, or a string and a string.
func fieldCompatible(field Field, operator ast.Operator, argument Argument) bool {
	if argument.Type.Kind != ArgumentScalar || argument.Type.Scalar != field.Type {
		return false
	}

	if argument.Cardinality != CardinalityOne {
		return false
	}

	switch operator {
	case ast.OperatorEquals:
		return field.Cardinality == CardinalityOne
	case ast.OperatorContains:
		return field.Cardinality == CardinalityMany || field.Type == TypeString
	}

	return false
}

// enumCompatible holds when an enum relation can be compared to an
// argument of the same enum.
func enumCompatible(relation EnumRelation, operator ast.Operator, argument Argument) bool {
	if argument.Type.Kind != ArgumentEnum || argument.Type.Enum != relation.Name {
		return false
	}

	if argument.Cardinality != CardinalityOne {
		return false
	}

	switch operator {
	case ast.OperatorEquals:
		return relation.Cardinality == CardinalityOne
	case ast.OperatorContains:
		return relation.Cardinality == CardinalityMany
	}

	return false
}
