package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/dragonfly/ast"
)

func TestNew(t *testing.T) {
	t.Parallel()

	ir := New()

	assert.True(t, ir.Models.IsEmpty())
	assert.True(t, ir.Enums.IsEmpty())
	assert.True(t, ir.Queries.IsEmpty())
}

func TestFieldAt(t *testing.T) {
	t.Parallel()

	ir := New()
	user := NewModel("User")
	address := NewModel("Address")
	postbox := NewModel("Postbox")

	require.NoError(t, user.InsertField(Field{
		Name:        "name",
		Type:        TypeString,
		Cardinality: CardinalityOne,
	}))

	require.NoError(t, address.InsertField(Field{
		Name:        "street",
		Type:        TypeString,
		Cardinality: CardinalityOne,
	}))

	require.NoError(t, postbox.InsertField(Field{
		Name:        "number",
		Type:        TypeInt,
		Cardinality: CardinalityOne,
	}))

	require.NoError(t, address.InsertOneToOne("postbox", "Postbox"))
	require.NoError(t, user.InsertManyToOne("address", "Address"))
	require.NoError(t, ir.InsertModel(user))
	require.NoError(t, ir.InsertModel(address))
	require.NoError(t, ir.InsertModel(postbox))

	field, ok := ir.FieldAt("User", []string{"name"})
	require.True(t, ok)
	assert.Equal(t, TypeString, field.Type)

	field, ok = ir.FieldAt("User", []string{"address", "postbox", "number"})
	require.True(t, ok)
	assert.Equal(t, TypeInt, field.Type)

	field, ok = ir.FieldAt("User", []string{"address", "street"})
	require.True(t, ok)
	assert.Equal(t, TypeString, field.Type)

	_, ok = ir.FieldAt("User", []string{"address", "postbox", "street"})
	assert.False(t, ok)

	_, ok = ir.FieldAt("User", nil)
	assert.False(t, ok)

	_, ok = ir.FieldAt("Visitor", []string{"name"})
	assert.False(t, ok)
}

func TestEnumRelationAt(t *testing.T) {
	t.Parallel()

	ir := New()
	user := NewModel("User")
	address := NewModel("Address")

	require.NoError(t, user.InsertField(Field{
		Name:        "name",
		Type:        TypeString,
		Cardinality: CardinalityOne,
	}))

	require.NoError(t, user.InsertManyToOne("address", "Address"))
	require.NoError(t, user.InsertOneToOne("socials", "Socials"))
	require.NoError(t, address.InsertEnumRelation("type", "AddressType"))
	require.NoError(t, ir.InsertModel(user))
	require.NoError(t, ir.InsertModel(address))

	require.NoError(t, ir.InsertEnum(Enum{
		Name:   "AddressType",
		Values: []string{"home", "work"},
	}))

	_, ok := ir.EnumRelationAt("User", []string{"name"})
	assert.False(t, ok)

	relation, ok := ir.EnumRelationAt("User", []string{"address", "type"})
	require.True(t, ok)
	assert.Equal(t, "AddressType", relation.Name)

	_, ok = ir.EnumRelationAt("User", []string{"address", "street"})
	assert.False(t, ok)

	// The Socials model is never declared, so nothing resolves through it.
	_, ok = ir.EnumRelationAt("User", []string{"socials", "facebook"})
	assert.False(t, ok)
}

func TestInsertDuplicateModel(t *testing.T) {
	t.Parallel()

	ir := New()

	require.NoError(t, ir.InsertModel(NewModel("User")))

	assert.EqualError(
		t,
		ir.InsertModel(NewModel("User")),
		"Error in model `User`: model already exists.",
	)
}

func TestInsertDuplicateEnum(t *testing.T) {
	t.Parallel()

	ir := New()

	require.NoError(t, ir.InsertEnum(Enum{
		Name:   "AddressType",
		Values: []string{"Home", "Work", "Other"},
	}))

	assert.EqualError(
		t,
		ir.InsertEnum(Enum{Name: "AddressType"}),
		"Error in enum `AddressType`: enum already exists.",
	)
}

func TestInsertDuplicateQuery(t *testing.T) {
	t.Parallel()

	ir := New()

	returnType := ReturnType{ModelName: "User", Cardinality: CardinalityMany}

	require.NoError(t, ir.InsertQuery(NewQuery("users", returnType, "user")))

	assert.EqualError(
		t,
		ir.InsertQuery(NewQuery("users", returnType, "user")),
		"Error in query `users`: query already exists.",
	)
}

func TestFromAst(t *testing.T) {
	t.Parallel()

	source := `model User {
  name: String
  age: Int
  daBoi: Boolean
  addresses: [Address]
  profile: @Profile
}

model Profile {
  bio: String
  createdAt: DateTime
}

model Address {
  street: String
  number: Int
  type: AddressType
}

enum AddressType {
  Home
  Work
  Other
}

query users($addressType: AddressType): [User] {
  user {
    name
    age
    daBoi
    addresses {
      street
      number
    }
  }
  where {
    user {
      addresses {
        type {
          equals: $addressType
        }
      }
    }
  }
}`

	document, _, err := ast.Parse(source)
	require.NoError(t, err)

	actual, err := FromAst(document)
	require.NoError(t, err)

	assert.Equal(t, []string{"User", "Profile", "Address"}, actual.Models.Keys())
	assert.Equal(t, []string{"AddressType"}, actual.Enums.Keys())
	assert.Equal(t, []string{"users"}, actual.Queries.Keys())

	user := NewModel("User")

	require.NoError(t, user.InsertField(Field{
		Name:        "name",
		Type:        TypeString,
		Cardinality: CardinalityOne,
	}))

	require.NoError(t, user.InsertField(Field{
		Name:        "age",
		Type:        TypeInt,
		Cardinality: CardinalityOne,
	}))

	require.NoError(t, user.InsertField(Field{
		Name:        "daBoi",
		Type:        TypeBoolean,
		Cardinality: CardinalityOne,
	}))

	require.NoError(t, user.InsertManyToMany("addresses", "Address"))
	require.NoError(t, user.InsertOneToOne("profile", "Profile"))

	actualUser, ok := actual.Models.Get("User")
	require.True(t, ok)
	assert.Equal(t, user, actualUser)

	profile := NewModel("Profile")

	require.NoError(t, profile.InsertField(Field{
		Name:        "bio",
		Type:        TypeString,
		Cardinality: CardinalityOne,
	}))

	require.NoError(t, profile.InsertField(Field{
		Name:        "createdAt",
		Type:        TypeDateTime,
		Cardinality: CardinalityOne,
	}))

	actualProfile, ok := actual.Models.Get("Profile")
	require.True(t, ok)
	assert.Equal(t, profile, actualProfile)

	address := NewModel("Address")

	require.NoError(t, address.InsertField(Field{
		Name:        "street",
		Type:        TypeString,
		Cardinality: CardinalityOne,
	}))

	require.NoError(t, address.InsertField(Field{
		Name:        "number",
		Type:        TypeInt,
		Cardinality: CardinalityOne,
	}))

	require.NoError(t, address.InsertEnumRelation("type", "AddressType"))

	actualAddress, ok := actual.Models.Get("Address")
	require.True(t, ok)
	assert.Equal(t, address, actualAddress)

	actualEnum, ok := actual.Enums.Get("AddressType")
	require.True(t, ok)

	assert.Equal(t, Enum{
		Name:   "AddressType",
		Values: []string{"Home", "Work", "Other"},
	}, actualEnum)

	users := NewQuery(
		"users",
		ReturnType{ModelName: "User", Cardinality: CardinalityMany},
		"user",
	)

	users.Arguments.Insert("addressType", Argument{
		Name:        "addressType",
		Type:        ArgumentType{Kind: ArgumentEnum, Enum: "AddressType"},
		Cardinality: CardinalityOne,
	})

	users.Schema = Schema{
		Alias: "user",
		Nodes: []SchemaNode{
			{Name: "name"},
			{Name: "age"},
			{Name: "daBoi"},
			{
				Name:     "addresses",
				Relation: true,
				Children: []SchemaNode{
					{Name: "street"},
					{Name: "number"},
				},
			},
		},
	}

	users.Where = &Where{
		Alias: "user",
		Conditions: []Condition{{
			Lhs:      []string{"addresses", "type"},
			Operator: OperatorEquals,
			Rhs:      "addressType",
		}},
	}

	actualQuery, ok := actual.Queries.Get("users")
	require.True(t, ok)
	assert.Equal(t, users, actualQuery)
}

func TestFromAstEmptyModel(t *testing.T) {
	t.Parallel()

	document := ast.Ast{Models: []ast.Model{{Name: "User"}}}

	actual, err := FromAst(document)
	assert.Nil(t, actual)
	assert.EqualError(t, err, "Error in model `User`: model has no fields.")
}

func TestFromAstUnknownFieldType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name: "reference",
			source: `model User {
  pet: Pet
}`,
			want: "Error in model `User`: field `pet` has unknown type `Pet`.",
		},
		{
			name: "owned",
			source: `model User {
  home: @Home
}`,
			want: "Error in model `User`: field `home` has unknown type `@Home`.",
		},
		{
			name: "array reference",
			source: `model User {
  pets: [Pet]
}`,
			want: "Error in model `User`: field `pets` has unknown type `[Pet]`.",
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			document, _, err := ast.Parse(test.source)
			require.NoError(t, err)

			actual, err := FromAst(document)
			assert.Nil(t, actual)
			assert.EqualError(t, err, test.want)
		})
	}
}

func TestFromAstUndefinedField(t *testing.T) {
	t.Parallel()

	source := `model User {
  name: String
  age: Int
}

query users: [User] {
  user {
    name
    age
    address
  }
}`

	document, _, err := ast.Parse(source)
	require.NoError(t, err)

	actual, err := FromAst(document)
	assert.Nil(t, actual)
	assert.EqualError(t, err, "Error in query `users`: field `address` is undefined.")
}

func TestFromAstUndefinedFieldInRelation(t *testing.T) {
	t.Parallel()

	source := `model User {
  name: String
  age: Int
}

query users: [User] {
  user {
    name
    age
    address {
      street
    }
  }
}`

	document, _, err := ast.Parse(source)
	require.NoError(t, err)

	actual, err := FromAst(document)
	assert.Nil(t, actual)

	assert.EqualError(
		t,
		err,
		"Error in query `users`: field `address.street` is undefined.",
	)
}

func TestFromAstUndefinedReturnType(t *testing.T) {
	t.Parallel()

	source := `query users: [User] {
  user {
    name
    age
  }
}`

	document, _, err := ast.Parse(source)
	require.NoError(t, err)

	actual, err := FromAst(document)
	assert.Nil(t, actual)

	assert.EqualError(
		t,
		err,
		"Error in query `users`: return type `User` is undefined.",
	)
}

func TestFromAstInvalidWhereName(t *testing.T) {
	t.Parallel()

	source := `model User {
  name: String
}

query users($name: String): [User] {
  user {
    name
  }
  where {
    client {
      name {
        equals: $name
      }
    }
  }
}`

	document, _, err := ast.Parse(source)
	require.NoError(t, err)

	actual, err := FromAst(document)
	assert.Nil(t, actual)

	assert.EqualError(
		t,
		err,
		"Error in query `users`: name of where root `client` does not match "+
			"name of schema root `user`.",
	)
}

func TestFromAstInvalidArgumentType(t *testing.T) {
	t.Parallel()

	source := `model User {
  name: String
  profile: @Profile
}

model Profile {
  bio: String
}

query users($profile: Profile): [User] {
  user {
    name
  }
}`

	document, _, err := ast.Parse(source)
	require.NoError(t, err)

	actual, err := FromAst(document)
	assert.Nil(t, actual)

	assert.EqualError(
		t,
		err,
		"Error in query `users`: argument `$profile` has invalid type `Profile`.",
	)
}

func TestFromAstUndefinedArgument(t *testing.T) {
	t.Parallel()

	source := `model Post {
  title: String
  tags: [String]
}

query posts: [Post] {
  post {
    title
  }
  where {
    post {
      tags {
        contains: $tag
      }
    }
  }
}`

	document, _, err := ast.Parse(source)
	require.NoError(t, err)

	actual, err := FromAst(document)
	assert.Nil(t, actual)
	assert.EqualError(t, err, "Error in query `posts`: argument `$tag` is undefined.")
}

func TestFromAstUnusedArgument(t *testing.T) {
	t.Parallel()

	source := `model User {
  name: String
}

query users($name: String): [User] {
  user {
    name
  }
}`

	document, _, err := ast.Parse(source)
	require.NoError(t, err)

	actual, err := FromAst(document)
	assert.Nil(t, actual)
	assert.EqualError(t, err, "Error in query `users`: argument `$name` is unused.")
}

func TestFromAstInvalidCondition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name: "type mismatch",
			source: `model User {
  name: String
  age: Int
}

query users($age: Int): [User] {
  user {
    name
  }
  where {
    user {
      name {
        equals: $age
      }
    }
  }
}`,
			want: "Error in query `users`: condition `name equals age` is invalid.",
		},
		{
			name: "contains on singular field",
			source: `model User {
  age: Int
}

query users($age: Int): [User] {
  user {
    age
  }
  where {
    user {
      age {
        contains: $age
      }
    }
  }
}`,
			want: "Error in query `users`: condition `age contains age` is invalid.",
		},
		{
			name: "undefined condition field",
			source: `model User {
  name: String
}

query users($city: String): [User] {
  user {
    name
  }
  where {
    user {
      address {
        city {
          equals: $city
        }
      }
    }
  }
}`,
			want: "Error in query `users`: field `address.city` is undefined.",
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			document, _, err := ast.Parse(test.source)
			require.NoError(t, err)

			actual, err := FromAst(document)
			assert.Nil(t, actual)
			assert.EqualError(t, err, test.want)
		})
	}
}

func TestFromAstStringContains(t *testing.T) {
	t.Parallel()

	// A singular String field still accepts contains, as a substring match.
	source := `model User {
  name: String
}

query users($term: String): [User] {
  user {
    name
  }
  where {
    user {
      name {
        contains: $term
      }
    }
  }
}`

	document, _, err := ast.Parse(source)
	require.NoError(t, err)

	actual, err := FromAst(document)
	require.NoError(t, err)

	query, ok := actual.Queries.Get("users")
	require.True(t, ok)
	require.NotNil(t, query.Where)

	assert.Equal(t, []Condition{{
		Lhs:      []string{"name"},
		Operator: OperatorContains,
		Rhs:      "term",
	}}, query.Where.Conditions)
}

func TestFromAstArrayContains(t *testing.T) {
	t.Parallel()

	source := `model Post {
  title: String
  tags: [String]
}

query postsByTag($tag: String): [Post] {
  post {
    title
  }
  where {
    post {
      tags {
        contains: $tag
      }
    }
  }
}`

	document, _, err := ast.Parse(source)
	require.NoError(t, err)

	actual, err := FromAst(document)
	require.NoError(t, err)

	query, ok := actual.Queries.Get("postsByTag")
	require.True(t, ok)
	require.NotNil(t, query.Where)

	assert.Equal(t, []Condition{{
		Lhs:      []string{"tags"},
		Operator: OperatorContains,
		Rhs:      "tag",
	}}, query.Where.Conditions)
}
