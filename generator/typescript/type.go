package typescript

import (
	"fmt"
	"io"

	"github.com/satishbabariya/dragonfly/generator/printer"
	"github.com/satishbabariya/dragonfly/ir"
)

// Type is a type expression.
type Type interface {
	printer.InlinePrinter
	typeExpression()
}

// Array is an `Array<T>` type.
type Array struct {
	Element Type
}

// Function is a function type.
type Function struct {
	Arguments  []FunctionArgument
	ReturnType Type
}

// FunctionArgument is one named argument of a function type.
type FunctionArgument struct {
	Name string
	Type Type
}

// Intersection is an `A & B` type.
type Intersection []Type

// Keyword is a built in type keyword.
type Keyword string

// Type keywords.
const (
	KeywordAny       Keyword = "any"
	KeywordBigInt    Keyword = "bigint"
	KeywordBoolean   Keyword = "boolean"
	KeywordIntrinsic Keyword = "intrinsic"
	KeywordNever     Keyword = "never"
	KeywordNull      Keyword = "null"
	KeywordNumber    Keyword = "number"
	KeywordObject    Keyword = "object"
	KeywordString    Keyword = "string"
	KeywordSymbol    Keyword = "symbol"
	KeywordUndefined Keyword = "undefined"
	KeywordUnknown   Keyword = "unknown"
	KeywordVoid      Keyword = "void"
)

// BigIntLiteral is a bigint literal type, printed with an `n` suffix.
type BigIntLiteral string

// BooleanLiteral is a `true` or `false` literal type.
type BooleanLiteral bool

// NumberLiteral is a numeric literal type, printed verbatim.
type NumberLiteral string

// StringLiteral is a double quoted string literal type.
type StringLiteral string

// ObjectLiteral is an inline object type.
type ObjectLiteral []ObjectLiteralProperty

// ObjectLiteralProperty is one `name: type` pair of an object literal.
type ObjectLiteralProperty struct {
	Name string
	Type Type
}

// Tuple is a fixed length `[A, B]` type.
type Tuple []Type

// TypeReference names a declared type, with optional type arguments.
type TypeReference struct {
	Identifier    string
	TypeArguments []Type
}

// Union is an `A | B` type.
type Union []Type

func (Array) typeExpression()          {}
func (Function) typeExpression()       {}
func (Intersection) typeExpression()   {}
func (Keyword) typeExpression()        {}
func (BigIntLiteral) typeExpression()  {}
func (BooleanLiteral) typeExpression() {}
func (NumberLiteral) typeExpression()  {}
func (StringLiteral) typeExpression()  {}
func (ObjectLiteral) typeExpression()  {}
func (Tuple) typeExpression()          {}
func (TypeReference) typeExpression()  {}
func (Union) typeExpression()          {}

func (a Array) PrintInline(w io.Writer) error {
	if _, err := io.WriteString(w, "Array<"); err != nil {
		return err
	}

	if err := a.Element.PrintInline(w); err != nil {
		return err
	}

	_, err := io.WriteString(w, ">")

	return err
}

func (f Function) PrintInline(w io.Writer) error {
	if _, err := io.WriteString(w, "("); err != nil {
		return err
	}

	if err := printer.Intercalate(f.Arguments, w, ", "); err != nil {
		return err
	}

	if _, err := io.WriteString(w, ") => "); err != nil {
		return err
	}

	return f.ReturnType.PrintInline(w)
}

func (a FunctionArgument) PrintInline(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s: ", a.Name); err != nil {
		return err
	}

	return a.Type.PrintInline(w)
}

func (i Intersection) PrintInline(w io.Writer) error {
	return printer.Intercalate([]Type(i), w, " & ")
}

func (k Keyword) PrintInline(w io.Writer) error {
	_, err := io.WriteString(w, string(k))

	return err
}

func (l BigIntLiteral) PrintInline(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%sn", string(l))

	return err
}

func (l BooleanLiteral) PrintInline(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%t", bool(l))

	return err
}

func (l NumberLiteral) PrintInline(w io.Writer) error {
	_, err := io.WriteString(w, string(l))

	return err
}

func (l StringLiteral) PrintInline(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\"%s\"", string(l))

	return err
}

func (o ObjectLiteral) PrintInline(w io.Writer) error {
	if _, err := io.WriteString(w, "{ "); err != nil {
		return err
	}

	if err := printer.Intercalate([]ObjectLiteralProperty(o), w, ", "); err != nil {
		return err
	}

	_, err := io.WriteString(w, " }")

	return err
}

func (p ObjectLiteralProperty) PrintInline(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s: ", p.Name); err != nil {
		return err
	}

	return p.Type.PrintInline(w)
}

func (t Tuple) PrintInline(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}

	if err := printer.Intercalate([]Type(t), w, ", "); err != nil {
		return err
	}

	_, err := io.WriteString(w, "]")

	return err
}

func (t TypeReference) PrintInline(w io.Writer) error {
	if _, err := io.WriteString(w, t.Identifier); err != nil {
		return err
	}

	if len(t.TypeArguments) > 0 {
		if _, err := io.WriteString(w, "<"); err != nil {
			return err
		}

		if err := printer.Intercalate(t.TypeArguments, w, ", "); err != nil {
			return err
		}

		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
	}

	return nil
}

func (u Union) PrintInline(w io.Writer) error {
	return printer.Intercalate([]Type(u), w, " | ")
}

// scalarReference maps a scalar field type onto the TypeScript type
// holding its values.
func scalarReference(scalar ir.Type) TypeReference {
	switch scalar {
	case ir.TypeBoolean:
		return TypeReference{Identifier: "boolean"}
	case ir.TypeDateTime:
		return TypeReference{Identifier: "Date"}
	case ir.TypeFloat, ir.TypeInt:
		return TypeReference{Identifier: "number"}
	default:
		return TypeReference{Identifier: "string"}
	}
}

// typeFromField is the property type of a scalar field.
func typeFromField(field ir.Field) Type {
	if field.Cardinality == ir.CardinalityMany {
		return Array{Element: scalarReference(field.Type)}
	}

	return scalarReference(field.Type)
}

// referenceTo is the property type of a relation field: the name of
// the target, wrapped in an array for Many.
func referenceTo(name string, cardinality ir.Cardinality) Type {
	reference := TypeReference{Identifier: name}

	if cardinality == ir.CardinalityMany {
		return Array{Element: reference}
	}

	return reference
}
