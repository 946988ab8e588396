package prisma

import (
	"fmt"
	"io"

	"github.com/satishbabariya/dragonfly/generator/printer"
)

// Value is a literal in an argument position.
type Value interface {
	printer.InlinePrinter
	value()
}

// Array is a bracketed list of values.
type Array []Value

// Boolean is a `true` or `false` literal.
type Boolean bool

// Keyword is a bare identifier, printed without quotes.
type Keyword string

// Number is a numeric literal, printed verbatim.
type Number string

// String is a double quoted string literal.
type String string

// Function is a function call value, such as `autoincrement()`.
type Function struct {
	Name       string
	Parameters []Value
}

func (Array) value()    {}
func (Boolean) value()  {}
func (Keyword) value()  {}
func (Number) value()   {}
func (String) value()   {}
func (Function) value() {}

func (a Array) PrintInline(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}

	if err := printer.Intercalate([]Value(a), w, ", "); err != nil {
		return err
	}

	_, err := io.WriteString(w, "]")

	return err
}

func (b Boolean) PrintInline(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%t", bool(b))

	return err
}

func (k Keyword) PrintInline(w io.Writer) error {
	_, err := io.WriteString(w, string(k))

	return err
}

func (n Number) PrintInline(w io.Writer) error {
	_, err := io.WriteString(w, string(n))

	return err
}

func (s String) PrintInline(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\"%s\"", string(s))

	return err
}

func (f Function) PrintInline(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s(", f.Name); err != nil {
		return err
	}

	if err := printer.Intercalate(f.Parameters, w, ", "); err != nil {
		return err
	}

	_, err := io.WriteString(w, ")")

	return err
}
