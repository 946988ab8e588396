package ir

import (
	"errors"
	"fmt"
)

// Detail errors without identifying names of their own.
var (
	ErrDuplicateEnum  = errors.New("enum already exists")
	ErrDuplicateModel = errors.New("model already exists")
	ErrEmptyModel     = errors.New("model has no fields")
	ErrDuplicateQuery = errors.New("query already exists")
	ErrEmptySchema    = errors.New("query schema is empty")
)

// EnumError is a type checking failure scoped to one enum.
type EnumError struct {
	Enum string
	Err  error
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("Error in enum `%s`: %v.", e.Enum, e.Err)
}

func (e *EnumError) Unwrap() error {
	return e.Err
}

// ModelError is a type checking failure scoped to one model.
type ModelError struct {
	Model string
	Err   error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("Error in model `%s`: %v.", e.Model, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// QueryError is a type checking failure scoped to one query.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("Error in query `%s`: %v.", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// DuplicateFieldError reports a field name declared twice in a model.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("field `%s` already exists", e.Field)
}

// UnknownFieldTypeError reports a field whose type names neither a
// declared enum nor a declared model.
type UnknownFieldTypeError struct {
	Field string
	Type  string
}

func (e *UnknownFieldTypeError) Error() string {
	return fmt.Sprintf("field `%s` has unknown type `%s`", e.Field, e.Type)
}

// InvalidArgumentTypeError reports an argument whose type is not a
// primitive, an enum reference, or an array of either.
type InvalidArgumentTypeError struct {
	Argument string
	Type     string
}

func (e *InvalidArgumentTypeError) Error() string {
	return fmt.Sprintf("argument `$%s` has invalid type `%s`", e.Argument, e.Type)
}

// InvalidConditionError reports a condition whose operands are not
// compatible under its operator.
type InvalidConditionError struct {
	Lhs      string
	Operator string
	Rhs      string
}

func (e *InvalidConditionError) Error() string {
	return fmt.Sprintf("condition `%s %s %s` is invalid", e.Lhs, e.Operator, e.Rhs)
}

// InvalidWhereNameError reports a where root whose name differs from
// the schema root.
type InvalidWhereNameError struct {
	Schema string
	Where  string
}

func (e *InvalidWhereNameError) Error() string {
	return fmt.Sprintf(
		"name of where root `%s` does not match name of schema root `%s`",
		e.Where, e.Schema,
	)
}

// UndefinedArgumentError reports a condition referring to an argument
// the query does not declare.
type UndefinedArgumentError struct {
	Argument string
}

func (e *UndefinedArgumentError) Error() string {
	return fmt.Sprintf("argument `$%s` is undefined", e.Argument)
}

// UndefinedFieldError reports a schema or condition path that does not
// resolve to a model field.
type UndefinedFieldError struct {
	Field string
}

func (e *UndefinedFieldError) Error() string {
	return fmt.Sprintf("field `%s` is undefined", e.Field)
}

// UndefinedReturnTypeError reports a return type naming an undeclared
// model.
type UndefinedReturnTypeError struct {
	Model string
}

func (e *UndefinedReturnTypeError) Error() string {
	return fmt.Sprintf("return type `%s` is undefined", e.Model)
}

// UnusedArgumentError reports a declared argument no condition uses.
type UnusedArgumentError struct {
	Argument string
}

func (e *UnusedArgumentError) Error() string {
	return fmt.Sprintf("argument `$%s` is unused", e.Argument)
}

// DuplicateEnum builds the error for an enum declared twice.
func DuplicateEnum(enum string) error {
	return &EnumError{Enum: enum, Err: ErrDuplicateEnum}
}

// DuplicateModel builds the error for a model declared twice.
func DuplicateModel(model string) error {
	return &ModelError{Model: model, Err: ErrDuplicateModel}
}

// DuplicateModelField builds the error for a field declared twice
// within a model.
func DuplicateModelField(model, field string) error {
	return &ModelError{Model: model, Err: &DuplicateFieldError{Field: field}}
}

// EmptyModel builds the error for a model without fields.
func EmptyModel(model string) error {
	return &ModelError{Model: model, Err: ErrEmptyModel}
}

// UnknownModelFieldType builds the error for a field with an
// unresolvable type.
func UnknownModelFieldType(model, field, fieldType string) error {
	return &ModelError{
		Model: model,
		Err:   &UnknownFieldTypeError{Field: field, Type: fieldType},
	}
}

// DuplicateQuery builds the error for a query declared twice.
func DuplicateQuery(query string) error {
	return &QueryError{Query: query, Err: ErrDuplicateQuery}
}

// EmptyQuerySchema builds the error for a query schema without nodes.
func EmptyQuerySchema(query string) error {
	return &QueryError{Query: query, Err: ErrEmptySchema}
}

// InvalidQueryArgumentType builds the error for an argument with an
// unusable type.
func InvalidQueryArgumentType(query, argument, argumentType string) error {
	return &QueryError{
		Query: query,
		Err:   &InvalidArgumentTypeError{Argument: argument, Type: argumentType},
	}
}

// InvalidQueryCondition builds the error for a condition with
// incompatible operands.
func InvalidQueryCondition(query, lhs, rhs, operator string) error {
	return &QueryError{
		Query: query,
		Err:   &InvalidConditionError{Lhs: lhs, Operator: operator, Rhs: rhs},
	}
}

// InvalidQueryWhereName builds the error for mismatched schema and
// where roots.
func InvalidQueryWhereName(query, schema, where string) error {
	return &QueryError{
		Query: query,
		Err:   &InvalidWhereNameError{Schema: schema, Where: where},
	}
}

// UndefinedQueryArgument builds the error for a condition referring to
// an undeclared argument.
func UndefinedQueryArgument(query, argument string) error {
	return &QueryError{Query: query, Err: &UndefinedArgumentError{Argument: argument}}
}

// UndefinedQueryField builds the error for an unresolvable field path.
func UndefinedQueryField(query, field string) error {
	return &QueryError{Query: query, Err: &UndefinedFieldError{Field: field}}
}

// UndefinedQueryReturnType builds the error for a return type naming
// an undeclared model.
func UndefinedQueryReturnType(query, model string) error {
	return &QueryError{Query: query, Err: &UndefinedReturnTypeError{Model: model}}
}

// UnusedQueryArgument builds the error for an argument no condition
// uses.
func UnusedQueryArgument(query, argument string) error {
	return &QueryError{Query: query, Err: &UnusedArgumentError{Argument: argument}}
}
