package typescript

import (
	"fmt"
	"io"

	"github.com/satishbabariya/dragonfly/generator/printer"
)

// Import is an import declaration. None of the forms print a trailing
// newline.
type Import interface {
	printer.Printer
	importDeclaration()
}

// NamedImport imports named exports from a module.
type NamedImport struct {
	Module     string
	Specifiers []NamedSpecifier
}

// StarImport imports all named exports of a module under one
// namespace alias.
type StarImport struct {
	Module string
	Alias  string
}

// DefaultImport imports the default export of a module.
type DefaultImport struct {
	Module string
	Alias  string
}

// NamedSpecifier is one name picked by a named import. A non empty
// Alias renames the export locally.
type NamedSpecifier struct {
	Identifier string
	Alias      string
}

func (NamedImport) importDeclaration()   {}
func (StarImport) importDeclaration()    {}
func (DefaultImport) importDeclaration() {}

func (s NamedSpecifier) PrintInline(w io.Writer) error {
	if s.Alias != "" {
		_, err := fmt.Fprintf(w, "%s as %s", s.Identifier, s.Alias)

		return err
	}

	_, err := io.WriteString(w, s.Identifier)

	return err
}

func (i NamedImport) Print(level int, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%simport { ", printer.Indent(tabSize, level)); err != nil {
		return err
	}

	if err := printer.Intercalate(i.Specifiers, w, ", "); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, " } from \"%s\";", i.Module)

	return err
}

func (i StarImport) Print(level int, w io.Writer) error {
	_, err := fmt.Fprintf(w, "%simport * as %s from \"%s\";", printer.Indent(tabSize, level), i.Alias, i.Module)

	return err
}

func (i DefaultImport) Print(level int, w io.Writer) error {
	_, err := fmt.Fprintf(w, "%simport %s from \"%s\";", printer.Indent(tabSize, level), i.Alias, i.Module)

	return err
}
