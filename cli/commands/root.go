// Package commands wires the dragonfly CLI surface.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/dragonfly/cli/internal/ui"
	"github.com/satishbabariya/dragonfly/internal/debug"
)

var rootCmd = &cobra.Command{
	Use:   "dragonfly",
	Short: "Compiler for dragonfly data model files",
	Long: `dragonfly compiles declarative data model files into a Prisma schema
and matching TypeScript declarations.

Write enums, models, and queries once, then generate:
- prisma/application.prisma for the database layer
- typescript/index.ts for client code`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugEnabled {
			debug.Enable()
		}

		if noColor {
			ui.DisableColor()
		}
	},
}

var (
	debugEnabled bool
	noColor      bool
	configFile   string
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugEnabled, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a dragonfly config file")
}

// Execute runs the CLI. A failing command surfaces exactly one
// diagnostic line on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	return err
}
