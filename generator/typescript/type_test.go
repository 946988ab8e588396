package typescript

import (
	"bytes"
	"testing"

	"github.com/satishbabariya/dragonfly/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderType(t *testing.T, expression Type) string {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, expression.PrintInline(&buf))

	return buf.String()
}

func TestTypePrint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression Type
		expected   string
	}{
		{
			name:       "array",
			expression: Array{Element: KeywordString},
			expected:   `Array<string>`,
		},
		{
			name: "nested array",
			expression: Array{Element: Array{
				Element: TypeReference{Identifier: "Tag"},
			}},
			expected: `Array<Array<Tag>>`,
		},
		{
			name: "function",
			expression: Function{
				Arguments: []FunctionArgument{
					{Name: "name", Type: KeywordString},
					{Name: "age", Type: KeywordNumber},
				},
				ReturnType: KeywordString,
			},
			expected: `(name: string, age: number) => string`,
		},
		{
			name:       "function without arguments",
			expression: Function{ReturnType: KeywordVoid},
			expected:   `() => void`,
		},
		{
			name: "intersection",
			expression: Intersection{
				TypeReference{Identifier: "Toast"},
				TypeReference{Identifier: "Bread"},
			},
			expected: `Toast & Bread`,
		},
		{
			name:       "keyword",
			expression: KeywordUndefined,
			expected:   `undefined`,
		},
		{
			name:       "bigint literal",
			expression: BigIntLiteral("1"),
			expected:   `1n`,
		},
		{
			name:       "boolean literal",
			expression: BooleanLiteral(true),
			expected:   `true`,
		},
		{
			name:       "number literal",
			expression: NumberLiteral("1.5"),
			expected:   `1.5`,
		},
		{
			name:       "string literal",
			expression: StringLiteral("hello"),
			expected:   `"hello"`,
		},
		{
			name: "object literal",
			expression: ObjectLiteral{
				{Name: "name", Type: KeywordString},
				{Name: "age", Type: KeywordNumber},
			},
			expected: `{ name: string, age: number }`,
		},
		{
			name: "tuple",
			expression: Tuple{
				KeywordString,
				KeywordNumber,
			},
			expected: `[string, number]`,
		},
		{
			name:       "type reference",
			expression: TypeReference{Identifier: "Role"},
			expected:   `Role`,
		},
		{
			name: "type reference with arguments",
			expression: TypeReference{
				Identifier: "Partial",
				TypeArguments: []Type{
					TypeReference{Identifier: "Image"},
				},
			},
			expected: `Partial<Image>`,
		},
		{
			name: "union",
			expression: Union{
				KeywordString,
				KeywordNull,
			},
			expected: `string | null`,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, renderType(t, test.expression))
		})
	}
}

func TestKeywords(t *testing.T) {
	t.Parallel()

	keywords := []Keyword{
		KeywordAny,
		KeywordBigInt,
		KeywordBoolean,
		KeywordIntrinsic,
		KeywordNever,
		KeywordNull,
		KeywordNumber,
		KeywordObject,
		KeywordString,
		KeywordSymbol,
		KeywordUndefined,
		KeywordUnknown,
		KeywordVoid,
	}

	expected := []string{
		"any",
		"bigint",
		"boolean",
		"intrinsic",
		"never",
		"null",
		"number",
		"object",
		"string",
		"symbol",
		"undefined",
		"unknown",
		"void",
	}

	for i, keyword := range keywords {
		assert.Equal(t, expected[i], renderType(t, keyword))
	}
}

func TestTypeFromField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		field    ir.Field
		expected string
	}{
		{
			name:     "boolean",
			field:    ir.Field{Name: "isPublic", Type: ir.TypeBoolean},
			expected: `boolean`,
		},
		{
			name:     "date time",
			field:    ir.Field{Name: "createdAt", Type: ir.TypeDateTime},
			expected: `Date`,
		},
		{
			name:     "float",
			field:    ir.Field{Name: "latitude", Type: ir.TypeFloat},
			expected: `number`,
		},
		{
			name:     "int",
			field:    ir.Field{Name: "height", Type: ir.TypeInt},
			expected: `number`,
		},
		{
			name:     "string",
			field:    ir.Field{Name: "title", Type: ir.TypeString},
			expected: `string`,
		},
		{
			name: "array",
			field: ir.Field{
				Name:        "tags",
				Type:        ir.TypeString,
				Cardinality: ir.CardinalityMany,
			},
			expected: `Array<string>`,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, renderType(t, typeFromField(test.field)))
		})
	}
}
