package commands

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/dragonfly/cli/internal/config"
	"github.com/satishbabariya/dragonfly/cli/internal/ui"
	"github.com/satishbabariya/dragonfly/internal/debug"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Work with the configured database",
	Long: `Work with the database behind the configured datasource.

This command provides subcommands for:
- Verifying connectivity with the configured driver`,
}

var dbPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Verify database connectivity",
	Long:  "Open a connection with the configured driver and ping the server.",
	RunE:  runDBPing,
}

func init() {
	dbCmd.AddCommand(dbPingCmd)

	rootCmd.AddCommand(dbCmd)
}

func runDBPing(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	driver, dsn := connectionTarget(cfg)
	if driver == "" {
		if cfg.Datasource.Provider == "" {
			return fmt.Errorf("no datasource configured and DATABASE_URL is not set")
		}

		return fmt.Errorf("no bundled driver for provider `%s`", cfg.Datasource.Provider)
	}

	debug.Log("pinging database", "driver", driver)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("could not open database handle: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	spinner, _ := ui.PrintSpinner("Pinging database")

	err = db.PingContext(ctx)

	if spinner != nil {
		_ = spinner.Stop()
	}

	if err != nil {
		return fmt.Errorf("could not reach database: %w", err)
	}

	ui.PrintSuccess("Database is reachable.")
	ui.PrintDetail("Driver", driver)

	return nil
}
