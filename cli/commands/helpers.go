package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/satishbabariya/dragonfly/cli/internal/config"
)

func detectProvider(connStr string) string {
	if strings.Contains(connStr, "mysql") {
		return "mysql"
	} else if strings.Contains(connStr, "sqlite") || strings.Contains(connStr, "file:") {
		return "sqlite"
	}
	return "postgresql"
}

// normalizeProviderForDriver normalizes provider name for sql.Open
// PostgreSQL driver uses "postgres", not "postgresql"
// SQLite driver uses "sqlite3", not "sqlite"
func normalizeProviderForDriver(provider string) string {
	switch provider {
	case "postgresql", "postgres", "cockroachdb":
		return "postgres"
	case "sqlite":
		return "sqlite3"
	default:
		return provider
	}
}

// connectionTarget resolves the database/sql driver and DSN for the
// configured datasource. DATABASE_URL wins when set. Providers without
// a bundled driver yield an empty driver name.
func connectionTarget(cfg *config.Config) (driver string, dsn string) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return normalizeProviderForDriver(detectProvider(url)), url
	}

	d := cfg.Datasource

	switch d.Provider {
	case "postgresql", "postgres", "cockroachdb":
		return "postgres", fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s",
			d.User,
			d.Password,
			d.Host,
			config.DefaultPort(d.Provider, d.Port),
			d.Database,
		)
	case "mysql":
		return "mysql", fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s",
			d.User,
			d.Password,
			d.Host,
			config.DefaultPort(d.Provider, d.Port),
			d.Database,
		)
	case "sqlite":
		return "sqlite3", d.Path
	}

	return "", ""
}
