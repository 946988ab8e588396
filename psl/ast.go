package psl

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Schema is a parsed schema document.
type Schema struct {
	Blocks []*Block `@@*`
}

// Block is one top level declaration.
type Block struct {
	DataSource *DataSource `@@`
	Generator  *Generator  `| @@`
	Enum       *Enum       `| @@`
	Model      *Model      `| @@`
}

// DataSource is a `datasource` block.
type DataSource struct {
	Pos         lexer.Position
	Name        string        `"datasource" @Ident`
	Assignments []*Assignment `"{" @@* "}"`
}

// Generator is a `generator` block.
type Generator struct {
	Pos         lexer.Position
	Name        string        `"generator" @Ident`
	Assignments []*Assignment `"{" @@* "}"`
}

// Assignment is one `key = value` line of a configuration block.
type Assignment struct {
	Pos   lexer.Position
	Key   string `@Ident`
	Value Value  `"=" @@`
}

// Enum is an `enum` block.
type Enum struct {
	Pos        lexer.Position
	Name       string            `"enum" @Ident`
	Values     []string          `"{" @Ident*`
	Attributes []*BlockAttribute `@@* "}"`
}

// Model is a `model` block.
type Model struct {
	Pos        lexer.Position
	Name       string            `"model" @Ident`
	Fields     []*Field          `"{" @@*`
	Attributes []*BlockAttribute `@@* "}"`
}

// Field is one field line of a model block. The name position also
// accepts block keywords, a reverse relation to a model named Model
// prints a field named model.
type Field struct {
	Pos        lexer.Position
	Name       string       `(@Ident | @Keyword)`
	Type       string       `@Ident`
	List       bool         `@("[" "]")?`
	Optional   bool         `@"?"?`
	Attributes []*Attribute `@@*`
}

// Attribute is a field attribute, `@name(...)`. The name may be
// dotted, as in `@db.Text`.
type Attribute struct {
	Pos       lexer.Position
	Name      string      `"@" @(Ident ("." Ident)*)`
	Arguments []*Argument `("(" (@@ ("," @@)*)? ")")?`
}

// BlockAttribute is a block attribute, `@@name(...)`.
type BlockAttribute struct {
	Pos       lexer.Position
	Name      string      `"@@" @(Ident ("." Ident)*)`
	Arguments []*Argument `("(" (@@ ("," @@)*)? ")")?`
}

// Argument is one argument of an attribute or function call,
// optionally named.
type Argument struct {
	Pos   lexer.Position
	Name  string `(@Ident ":")?`
	Value Value  `@@`
}

// Value is an expression on the right side of an assignment or inside
// an argument list.
type Value interface {
	fmt.Stringer
	value()
}

// FunctionValue is a call, such as `autoincrement()` or
// `uuidOssp(map: "uuid-ossp")`.
type FunctionValue struct {
	Pos       lexer.Position
	Name      string      `@Ident`
	Arguments []*Argument `"(" (@@ ("," @@)*)? ")"`
}

// ArrayValue is a bracketed value list.
type ArrayValue struct {
	Pos      lexer.Position
	Elements []Value `"[" (@@ ("," @@)*)? "]"`
}

// StringValue is a double quoted literal, stored unquoted.
type StringValue struct {
	Pos   lexer.Position
	Value string `@String`
}

// NumberValue is a numeric literal, stored verbatim.
type NumberValue struct {
	Pos   lexer.Position
	Value string `@Number`
}

// PathValue is a bare constant or dotted reference, such as
// `foreignKeys` or `id`.
type PathValue struct {
	Pos   lexer.Position
	Value string `@(Ident ("." Ident)*)`
}

func (*FunctionValue) value() {}
func (*ArrayValue) value()    {}
func (*StringValue) value()   {}
func (*NumberValue) value()   {}
func (*PathValue) value()     {}

func (f *FunctionValue) String() string {
	parts := make([]string, len(f.Arguments))
	for i, argument := range f.Arguments {
		parts[i] = argument.String()
	}

	return f.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (a *ArrayValue) String() string {
	parts := make([]string, len(a.Elements))
	for i, element := range a.Elements {
		parts[i] = element.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func (s *StringValue) String() string {
	return fmt.Sprintf("%q", s.Value)
}

func (n *NumberValue) String() string {
	return n.Value
}

func (p *PathValue) String() string {
	return p.Value
}

func (a *Argument) String() string {
	if a.Name != "" {
		return a.Name + ": " + a.Value.String()
	}

	return a.Value.String()
}

// Models returns the model blocks in document order.
func (s *Schema) Models() []*Model {
	var models []*Model

	for _, block := range s.Blocks {
		if block.Model != nil {
			models = append(models, block.Model)
		}
	}

	return models
}

// Enums returns the enum blocks in document order.
func (s *Schema) Enums() []*Enum {
	var enums []*Enum

	for _, block := range s.Blocks {
		if block.Enum != nil {
			enums = append(enums, block.Enum)
		}
	}

	return enums
}

// DataSources returns the datasource blocks in document order.
func (s *Schema) DataSources() []*DataSource {
	var sources []*DataSource

	for _, block := range s.Blocks {
		if block.DataSource != nil {
			sources = append(sources, block.DataSource)
		}
	}

	return sources
}

// Generators returns the generator blocks in document order.
func (s *Schema) Generators() []*Generator {
	var generators []*Generator

	for _, block := range s.Blocks {
		if block.Generator != nil {
			generators = append(generators, block.Generator)
		}
	}

	return generators
}

// Model returns the named model block, or nil.
func (s *Schema) Model(name string) *Model {
	for _, model := range s.Models() {
		if model.Name == name {
			return model
		}
	}

	return nil
}

// Field returns the named field of the model, or nil.
func (m *Model) Field(name string) *Field {
	for _, field := range m.Fields {
		if field.Name == name {
			return field
		}
	}

	return nil
}

// Attribute returns the named attribute of the field, or nil.
func (f *Field) Attribute(name string) *Attribute {
	for _, attribute := range f.Attributes {
		if attribute.Name == name {
			return attribute
		}
	}

	return nil
}

func assignment(assignments []*Assignment, key string) Value {
	for _, entry := range assignments {
		if entry.Key == key {
			return entry.Value
		}
	}

	return nil
}

// Assignment returns the value assigned to key, or nil.
func (d *DataSource) Assignment(key string) Value {
	return assignment(d.Assignments, key)
}

// Assignment returns the value assigned to key, or nil.
func (g *Generator) Assignment(key string) Value {
	return assignment(g.Assignments, key)
}
