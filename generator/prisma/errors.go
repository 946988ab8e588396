package prisma

import "fmt"

// DuplicateEnumError reports an enum inserted twice into a schema.
type DuplicateEnumError struct {
	Enum string
}

func (e *DuplicateEnumError) Error() string {
	return fmt.Sprintf("enum `%s` already exists", e.Enum)
}

// DuplicateModelError reports a model inserted twice into a schema.
type DuplicateModelError struct {
	Model string
}

func (e *DuplicateModelError) Error() string {
	return fmt.Sprintf("model `%s` already exists", e.Model)
}

// DuplicateFieldError reports a field name claimed twice within one
// model block.
type DuplicateFieldError struct {
	Model string
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf(
		"model `%s` contains duplicate field `%s`",
		e.Model,
		e.Field,
	)
}

// UnknownModelError reports a relation whose target model is not part
// of the schema.
type UnknownModelError struct {
	Model string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("model `%s` does not exist", e.Model)
}

// DuplicateEnum creates a DuplicateEnumError.
func DuplicateEnum(enum string) error {
	return &DuplicateEnumError{Enum: enum}
}

// DuplicateModel creates a DuplicateModelError.
func DuplicateModel(model string) error {
	return &DuplicateModelError{Model: model}
}

// DuplicateField creates a DuplicateFieldError.
func DuplicateField(model, field string) error {
	return &DuplicateFieldError{Model: model, Field: field}
}

// UnknownModel creates an UnknownModelError.
func UnknownModel(model string) error {
	return &UnknownModelError{Model: model}
}
