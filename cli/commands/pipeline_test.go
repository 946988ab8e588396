package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/dragonfly/cli/internal/config"
)

// useMemFs swaps the CLI filesystem for an in-memory one for the
// duration of the test.
func useMemFs(t *testing.T) afero.Fs {
	t.Helper()

	previous := config.AppFs
	config.AppFs = afero.NewMemMapFs()

	t.Cleanup(func() {
		config.AppFs = previous
	})

	return config.AppFs
}

func TestDiagnosticError(t *testing.T) {
	cause := errors.New("Expected an enum, model, or query.")
	err := parseFailure(cause)

	assert.EqualError(t, err, "parse: Expected an enum, model, or query.")
	assert.ErrorIs(t, err, cause)

	var diag diagnostic

	require.ErrorAs(t, err, &diag)
	assert.Equal(t, "parse", diag.stage)
}

func TestCompile(t *testing.T) {
	fs := useMemFs(t)

	source := `enum Role {
  Admin
  Member
}

model User {
  name: String
  role: Role
}
`

	require.NoError(t, afero.WriteFile(fs, "app.dfly", []byte(source), 0o644))

	data, err := compile("app.dfly")
	require.NoError(t, err)

	assert.Equal(t, []string{"User"}, data.Models.Keys())
	assert.Equal(t, []string{"Role"}, data.Enums.Keys())
}

func TestCompileMissingFile(t *testing.T) {
	useMemFs(t)

	_, err := compile("missing.dfly")
	require.Error(t, err)

	assert.True(t, strings.HasPrefix(err.Error(), "parse: Could not read input file."), err.Error())
}

func TestCompileParseError(t *testing.T) {
	fs := useMemFs(t)

	require.NoError(t, afero.WriteFile(fs, "app.dfly", []byte("melon User {}"), 0o644))

	_, err := compile("app.dfly")

	assert.EqualError(t, err, "parse: Expected an enum, model, or query.")
}

func TestCompileCheckError(t *testing.T) {
	fs := useMemFs(t)

	source := `model User {
  role: Role
}
`

	require.NoError(t, afero.WriteFile(fs, "app.dfly", []byte(source), 0o644))

	_, err := compile("app.dfly")

	assert.EqualError(t, err, "check: Error in model `User`: field `role` has unknown type `Role`.")
}
