package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/dragonfly/cli/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check a model file",
	Long: `Check a dragonfly model file without generating any output.

This command will:
- Parse the model file
- Type check enums, models, and queries
- Report the first error found, if any`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	file := args[0]

	data, err := compile(file)
	if err != nil {
		ui.PrintError("Error while checking `%s`.", file)

		return err
	}

	ui.PrintSuccess("No errors found in `%s`.", file)

	ui.PrintTable(
		[]string{"Declarations", "Count"},
		[][]string{
			{"Enums", strconv.Itoa(data.Enums.Len())},
			{"Models", strconv.Itoa(data.Models.Len())},
			{"Queries", strconv.Itoa(data.Queries.Len())},
		},
	)

	return nil
}
