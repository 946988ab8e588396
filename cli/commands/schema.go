package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/dragonfly/cli/internal/ui"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Language reference for model files",
	Long:  "Print the language reference for dragonfly model files.",
	RunE:  runSchema,
}

func init() {
	// `dragonfly help schema` renders the same reference as running
	// the command directly.
	schemaCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		_ = runSchema(cmd, args)
	})

	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	return ui.PrintMarkdown(schemaReference)
}

// schemaReference documents the surface syntax of model files.
const schemaReference = `# The dragonfly language

A model file is a sequence of enum, model, and query declarations in
any order. Names are capitalized for types and camelCase for fields.

## Enums

` + "```" + `
enum Role {
  Admin
  Member
}
` + "```" + `

Each line inside the block is one variant.

## Models

` + "```" + `
model User {
  name: String
  age: Int
  role: Role
  posts: [Post]
  profile: @Profile
}
` + "```" + `

Field types:

- ` + "`Boolean`" + `, ` + "`DateTime`" + `, ` + "`Float`" + `, ` + "`Int`" + `, ` + "`String`" + ` are the scalar types.
- ` + "`[T]`" + ` is an array of any scalar, enum, or model type. Arrays do not nest.
- A capitalized name that is not a scalar refers to a declared enum or model.
- ` + "`@Name`" + ` embeds a model owned by this one. The owned model lives and
  dies with its owner and carries the foreign key in the generated schema.

Every generated model also gets ` + "`id`" + ` and ` + "`createdAt`" + ` columns, so model
files never declare them.

## Queries

` + "```" + `
query users($role: Role): [User] {
  user {
    name
    age
  }
  where {
    user {
      role {
        equals: $role
      }
    }
  }
}
` + "```" + `

- Arguments are declared as ` + "`$name: Type`" + ` and must all be used.
- The return type names a declared model, optionally as an array.
- The first block selects fields, nesting into relations as needed.
- The optional ` + "`where`" + ` block repeats the root name and walks to a field,
  then compares it with ` + "`equals`" + ` or ` + "`contains`" + ` against an argument.

## Checking and building

Run ` + "`dragonfly check app.dfly`" + ` to type check a file, and
` + "`dragonfly build app.dfly`" + ` to generate ` + "`prisma/application.prisma`" + ` and
` + "`typescript/index.ts`" + ` under the output directory.
`
