package commands

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/dragonfly/cli/internal/config"
	"github.com/satishbabariya/dragonfly/cli/internal/ui"
	"github.com/satishbabariya/dragonfly/generator/prisma"
	"github.com/satishbabariya/dragonfly/generator/typescript"
	"github.com/satishbabariya/dragonfly/internal/debug"
	"github.com/satishbabariya/dragonfly/ir"
	"github.com/satishbabariya/dragonfly/psl"
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Compile a model file",
	Long: `Compile a dragonfly model file into backend sources.

This command will:
- Parse and type check the model file
- Write prisma/application.prisma under the output directory
- Write typescript/index.ts under the output directory`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

var buildOutput string

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "./out", "Output directory")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	file := args[0]

	data, err := compile(file)
	if err != nil {
		ui.PrintError("An error occurred during compilation.")

		return err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	if err := emit(data, cfg, buildOutput); err != nil {
		ui.PrintError("An error occurred during compilation.")

		return err
	}

	ui.PrintSuccess("Wrote `%s`.", filepath.Join(buildOutput, "prisma", "application.prisma"))
	ui.PrintSuccess("Wrote `%s`.", filepath.Join(buildOutput, "typescript", "index.ts"))

	return nil
}

// emit renders both backends under the output directory. The Prisma
// document is re-parsed as a sanity check before anything is written.
func emit(data *ir.Ir, cfg *config.Config, out string) error {
	schema, err := prisma.FromIR(data)
	if err != nil {
		return writeFailure(err)
	}

	if source, ok := cfg.DataSourceBlock(); ok {
		schema.DataSource = source
	}

	if generator, ok := cfg.GeneratorBlock(); ok {
		schema.Generators.Insert(generator.Name, generator)
	}

	var rendered bytes.Buffer

	if err := schema.Print(0, &rendered); err != nil {
		return writeFailure(fmt.Errorf("Could not generate prisma schema. %w", err))
	}

	if _, err := psl.Parse(rendered.String()); err != nil {
		return writeFailure(fmt.Errorf("Could not verify prisma schema. %w", err))
	}

	prismaDir := filepath.Join(out, "prisma")

	if err := config.AppFs.MkdirAll(prismaDir, 0o755); err != nil {
		return writeFailure(fmt.Errorf("Could not create prisma output directory. %w", err))
	}

	prismaPath := filepath.Join(prismaDir, "application.prisma")

	debug.Log("writing prisma schema", "path", prismaPath, "bytes", rendered.Len())

	if err := afero.WriteFile(config.AppFs, prismaPath, rendered.Bytes(), 0o644); err != nil {
		return writeFailure(fmt.Errorf("Could not write prisma schema. %w", err))
	}

	typescriptDir := filepath.Join(out, "typescript")

	if err := config.AppFs.MkdirAll(typescriptDir, 0o755); err != nil {
		return writeFailure(fmt.Errorf("Could not create typescript output directory. %w", err))
	}

	var index bytes.Buffer

	if err := typescript.FromIR(data).Print(0, &index); err != nil {
		return writeFailure(fmt.Errorf("Could not generate typescript declarations. %w", err))
	}

	indexPath := filepath.Join(typescriptDir, "index.ts")

	debug.Log("writing typescript declarations", "path", indexPath, "bytes", index.Len())

	if err := afero.WriteFile(config.AppFs, indexPath, index.Bytes(), 0o644); err != nil {
		return writeFailure(fmt.Errorf("Could not create typescript index file. %w", err))
	}

	return nil
}
