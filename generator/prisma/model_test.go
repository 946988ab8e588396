package prisma

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelPrint(t *testing.T) {
	t.Parallel()

	model := &Model{Name: "User"}

	require.NoError(t, model.InsertField(IDField()))
	require.NoError(t, model.InsertField(CreatedAtField()))
	require.NoError(t, model.InsertField(Field{
		Name: "name",
		Type: TypeName("String"),
	}))

	var buf bytes.Buffer

	require.NoError(t, model.Print(0, &buf))

	expected := `model User {
  createdAt DateTime @default(now())
  id        Int      @id @default(autoincrement())
  name      String
}
`

	assert.Equal(t, expected, buf.String())
}

func TestModelPrintBlockAttributes(t *testing.T) {
	t.Parallel()

	model := &Model{
		Name: "User",
		Attributes: []BlockAttribute{
			{
				Name: "map",
				Arguments: []Argument{
					{Value: String("users")},
				},
			},
		},
	}

	require.NoError(t, model.InsertField(IDField()))
	require.NoError(t, model.InsertField(Field{
		Name: "email",
		Type: TypeName("String"),
	}))

	var buf bytes.Buffer

	require.NoError(t, model.Print(0, &buf))

	expected := `model User {
  email String
  id    Int    @id @default(autoincrement())

  @@map("users")
}
`

	assert.Equal(t, expected, buf.String())
}

func TestModelInsertDuplicateField(t *testing.T) {
	t.Parallel()

	model := &Model{Name: "User"}

	require.NoError(t, model.InsertField(IDField()))

	assert.EqualError(
		t,
		model.InsertField(Field{Name: "id", Type: TypeName("Int")}),
		"model `User` contains duplicate field `id`",
	)
}
