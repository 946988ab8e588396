package commands

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/satishbabariya/dragonfly/ast"
	"github.com/satishbabariya/dragonfly/cli/internal/config"
	"github.com/satishbabariya/dragonfly/internal/debug"
	"github.com/satishbabariya/dragonfly/ir"
)

// diagnostic tags a pipeline failure with the stage that produced it.
// Commands return at most one of these per invocation.
type diagnostic struct {
	stage string
	err   error
}

func (d diagnostic) Error() string {
	return d.stage + ": " + d.err.Error()
}

func (d diagnostic) Unwrap() error {
	return d.err
}

func parseFailure(err error) error {
	return diagnostic{stage: "parse", err: err}
}

func checkFailure(err error) error {
	return diagnostic{stage: "check", err: err}
}

func writeFailure(err error) error {
	return diagnostic{stage: "write", err: err}
}

// compile runs the front half of the pipeline on a model file: read,
// parse, type check. The first failure aborts.
func compile(file string) (*ir.Ir, error) {
	source, err := afero.ReadFile(config.AppFs, file)
	if err != nil {
		return nil, parseFailure(fmt.Errorf("Could not read input file. %w", err))
	}

	debug.Log("parsing model file", "file", file, "bytes", len(source))

	document, _, err := ast.Parse(string(source))
	if err != nil {
		return nil, parseFailure(err)
	}

	data, err := ir.FromAst(document)
	if err != nil {
		return nil, checkFailure(err)
	}

	debug.Log(
		"model file checked",
		"models", data.Models.Len(),
		"enums", data.Enums.Len(),
		"queries", data.Queries.Len(),
	)

	return data, nil
}
