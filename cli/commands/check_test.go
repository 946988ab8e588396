package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCheck(t *testing.T) {
	fs := useMemFs(t)

	require.NoError(t, afero.WriteFile(fs, "app.dfly", []byte(buildTestSource), 0o644))

	assert.NoError(t, runCheck(checkCmd, []string{"app.dfly"}))
}

func TestRunCheckReportsDiagnostic(t *testing.T) {
	fs := useMemFs(t)

	require.NoError(t, afero.WriteFile(fs, "app.dfly", []byte("model User {\n  role: Role\n}\n"), 0o644))

	err := runCheck(checkCmd, []string{"app.dfly"})

	assert.EqualError(t, err, "check: Error in model `User`: field `role` has unknown type `Role`.")
}

func TestRunCheckMissingFile(t *testing.T) {
	useMemFs(t)

	err := runCheck(checkCmd, []string{"missing.dfly"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse: Could not read input file.")
}
