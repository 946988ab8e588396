package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/dragonfly/cli/internal/ui"
	"github.com/satishbabariya/dragonfly/cli/internal/update"
	"github.com/satishbabariya/dragonfly/cli/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the dragonfly version, and optionally check for a newer release.",
	RunE:  runVersion,
}

var (
	versionCheck bool
	versionFull  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check for a newer release")
	versionCmd.Flags().BoolVar(&versionFull, "full", false, "Include build metadata")

	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()

	fmt.Println(info.String())

	if versionFull {
		ui.PrintDetail("Build Date", info.BuildDate)
		ui.PrintDetail("Git Commit", info.GitCommit)
		ui.PrintDetail("Go Version", info.GoVersion)
		ui.PrintDetail("Platform", info.Platform)
	}

	if versionCheck {
		return update.Check(info.Version)
	}

	return nil
}
