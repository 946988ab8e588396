package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := strings.TrimSpace(`
enum Tag {
  Nature
  City
}

model Image {
  title: String
  tags: [Tag]
}

query images: [Image] {
  image {
    title
  }
}
`)

	got, rest, err := Parse(input)
	require.NoError(t, err)
	assert.Empty(t, rest)

	require.Len(t, got.Enums, 1)
	assert.Equal(t, Enum{Name: "Tag", Values: []string{"Nature", "City"}}, got.Enums[0])

	require.Len(t, got.Models, 1)
	assert.Equal(t, "Image", got.Models[0].Name)
	assert.Len(t, got.Models[0].Fields, 2)

	require.Len(t, got.Queries, 1)
	assert.Equal(t, "images", got.Queries[0].Name)
	assert.Equal(t, ReturnType{Name: "Image", Array: true}, got.Queries[0].ReturnType)
}

func TestParseEmptyInput(t *testing.T) {
	got, rest, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, Ast{}, got)
}

func TestParseDuplicateModelName(t *testing.T) {
	input := strings.TrimSpace(`
model Image {
  title: String
}

model Image {
  title: String
}
`)

	_, _, err := Parse(input)
	require.Error(t, err)
	assert.Equal(t, "Duplicate model name `Image`", err.Error())
}

func TestParseDuplicateQueryName(t *testing.T) {
	input := strings.TrimSpace(`
query images: [Image] {
  image {
    title
  }
}

query images: [Image] {
  image {
    title
  }
}
`)

	_, _, err := Parse(input)
	require.Error(t, err)
	assert.Equal(t, "Duplicate query name `images`", err.Error())
}

func TestParseDuplicateEnumName(t *testing.T) {
	input := strings.TrimSpace(`
enum DrivingSide {
  Left
  Right
}

enum DrivingSide {
  Left
  Right
}
`)

	_, _, err := Parse(input)
	require.Error(t, err)
	assert.Equal(t, "Duplicate enum name `DrivingSide`", err.Error())
}

func TestParseUnknownDeclaration(t *testing.T) {
	_, _, err := Parse("component Home {}")
	require.Error(t, err)
	assert.Equal(t, "Expected an enum, model, or query.", err.Error())
}
