// Package printer defines the rendering contracts shared by the code
// generators. Block constructs own whole lines and print themselves at
// an indentation level, inline constructs print flat into the current
// line. Both write straight to the output stream.
package printer

import (
	"io"
	"strings"
)

// Printer is a construct that renders as one or more full lines.
type Printer interface {
	// Print renders the construct at the given indentation level.
	Print(level int, w io.Writer) error
}

// InlinePrinter is a construct that renders into the current line
// without any indentation of its own.
type InlinePrinter interface {
	PrintInline(w io.Writer) error
}

// Indent returns the leading whitespace for an indentation level.
func Indent(tabSize, level int) string {
	return strings.Repeat(" ", tabSize*level)
}

// Intercalate renders items separated by sep. The first item prints
// bare, every following item prints after the separator. Nothing is
// written for an empty slice.
func Intercalate[T InlinePrinter](items []T, w io.Writer, sep string) error {
	for i, item := range items {
		if i > 0 {
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}

		if err := item.PrintInline(w); err != nil {
			return err
		}
	}

	return nil
}
