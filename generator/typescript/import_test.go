package typescript

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedSpecifierPrint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	specifier := NamedSpecifier{Identifier: "bar"}

	require.NoError(t, specifier.PrintInline(&buf))
	assert.Equal(t, "bar", buf.String())

	buf.Reset()

	specifier.Alias = "foo"

	require.NoError(t, specifier.PrintInline(&buf))
	assert.Equal(t, "bar as foo", buf.String())
}

func TestImportPrint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		declaration Import
		expected    string
	}{
		{
			name: "named",
			declaration: NamedImport{
				Module: "foo",
				Specifiers: []NamedSpecifier{
					{Identifier: "bar", Alias: "foo"},
					{Identifier: "baz"},
				},
			},
			expected: `import { bar as foo, baz } from "foo";`,
		},
		{
			name:        "star",
			declaration: StarImport{Module: "foo", Alias: "bar"},
			expected:    `import * as bar from "foo";`,
		},
		{
			name:        "default",
			declaration: DefaultImport{Module: "foo", Alias: "bar"},
			expected:    `import bar from "foo";`,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			require.NoError(t, test.declaration.Print(0, &buf))
			assert.Equal(t, test.expected, buf.String())
		})
	}
}
