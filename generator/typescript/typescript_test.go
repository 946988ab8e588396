package typescript

import (
	"bytes"
	"testing"

	"github.com/satishbabariya/dragonfly/ast"
	"github.com/satishbabariya/dragonfly/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, source string) string {
	t.Helper()

	document, _, err := ast.Parse(source)
	require.NoError(t, err)

	data, err := ir.FromAst(document)
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, FromIR(data).Print(0, &buf))

	return buf.String()
}

func TestEmptyIndex(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, Index{}.Print(0, &buf))
	assert.Equal(t, "", buf.String())
}

func TestFromIR(t *testing.T) {
	t.Parallel()

	data := ir.New()

	require.NoError(t, data.InsertEnum(ir.Enum{
		Name:   "Color",
		Values: []string{"Red", "Green", "Blue"},
	}))

	var buf bytes.Buffer

	require.NoError(t, FromIR(data).Print(0, &buf))

	expected := `enum Color {
    Red = "Red",
    Green = "Green",
    Blue = "Blue",
}
`

	assert.Equal(t, expected, buf.String())
}

func TestCompileModels(t *testing.T) {
	t.Parallel()

	source := `enum Tag {
  Foo
  Bar
}

model Image {
  title: String
  tags: [Tag]
  owner: User
  resource: @Resource
}

model User {
  name: String
  images: [Image]
}

model Resource {
  size: Int
}`

	expected := `interface Image {
    title: string;
    tags: Array<Tag>;
    owner: User;
    resource?: Resource;
}

interface User {
    name: string;
    images: Array<Image>;
}

interface Resource {
    size: number;
}

enum Tag {
    Foo = "Foo",
    Bar = "Bar",
}
`

	assert.Equal(t, expected, compile(t, source))
}

func TestCompileFieldOrder(t *testing.T) {
	t.Parallel()

	source := `model Post {
  title: String
  body: String
  score: Float
  published: Boolean
}`

	expected := `interface Post {
    body: string;
    published: boolean;
    score: number;
    title: string;
}
`

	assert.Equal(t, expected, compile(t, source))
}
