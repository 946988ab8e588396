package prisma

import (
	"fmt"
	"io"

	"github.com/satishbabariya/dragonfly/generator/printer"
)

// Argument is a single argument to an attribute. An empty Name prints
// the value alone.
type Argument struct {
	Name  string
	Value Value
}

func (a Argument) PrintInline(w io.Writer) error {
	if a.Name != "" {
		if _, err := fmt.Fprintf(w, "%s: ", a.Name); err != nil {
			return err
		}
	}

	return a.Value.PrintInline(w)
}

func printArguments(arguments []Argument, w io.Writer) error {
	if len(arguments) == 0 {
		return nil
	}

	if _, err := io.WriteString(w, "("); err != nil {
		return err
	}

	if err := printer.Intercalate(arguments, w, ", "); err != nil {
		return err
	}

	_, err := io.WriteString(w, ")")

	return err
}
