// Package psl parses the subset of the Prisma Schema Language that
// the prisma generator emits: datasource, generator, enum and model
// blocks. The build pipeline re-parses every rendered schema with it
// before writing, and the generator tests check structure through it
// instead of matching raw text.
package psl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// schemaLexer tokenizes the emitted schema dialect.
var schemaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `\b(datasource|enum|generator|model)\b`},
	{Name: "BlockAttr", Pattern: `@@`},
	{Name: "FieldAttr", Pattern: `@`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Equal", Pattern: `=`},
	{Name: "Question", Pattern: `\?`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Number", Pattern: `-?\d+(?:\.\d+)?`},
	{Name: "Ident", Pattern: `[\p{L}][\p{L}\p{N}_]*`},
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Newline", Pattern: `[\r\n]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var schemaParser = participle.MustBuild[Schema](
	participle.Lexer(schemaLexer),
	participle.Elide("Whitespace", "Newline", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(10),
	participle.Union[Value](
		&FunctionValue{},
		&ArrayValue{},
		&StringValue{},
		&NumberValue{},
		&PathValue{},
	),
)

// Parse parses schema source into its block list. The returned error
// carries the line and column of the first offending token.
func Parse(source string) (*Schema, error) {
	return schemaParser.ParseString("", source)
}
