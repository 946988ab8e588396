// Package config resolves dragonfly settings from config files, .env
// files, and the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/satishbabariya/dragonfly/generator/prisma"
)

// AppFs is the filesystem every CLI read and write goes through.
// Tests swap in a memory filesystem.
var AppFs = afero.NewOsFs()

// Config holds the application configuration
type Config struct {
	Datasource        Datasource
	Generator         Generator
	RelationMode      string
	ShadowDatabaseURL string
	DirectURL         string
}

// Datasource configures the datasource block of the generated schema.
type Datasource struct {
	Provider   string
	Host       string
	Port       int
	User       string
	Password   string
	Database   string
	Schema     string
	Path       string
	Extensions []string
}

// Generator configures the generator block of the generated schema.
type Generator struct {
	Name            string
	Provider        string
	Output          string
	BinaryTargets   []string
	PreviewFeatures []string
	EngineType      string
}

// Load reads the configuration. An explicit file wins, then
// ./.dragonfly.yaml, then $HOME/.dragonfly/config.yaml. Environment
// variables with the DRAGONFLY prefix override file values.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetFs(AppFs)
	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else if _, err := AppFs.Stat(".dragonfly.yaml"); err == nil {
		v.SetConfigFile(".dragonfly.yaml")
	} else if home, err := homedir.Dir(); err == nil {
		v.SetConfigFile(filepath.Join(home, ".dragonfly", "config.yaml"))
	}

	v.SetEnvPrefix("DRAGONFLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Missing config files are fine, every key has a zero value.
	_ = v.ReadInConfig()

	// Load .env file if it exists
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	// Load .env.local if it exists (higher priority)
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		Datasource: Datasource{
			Provider:   v.GetString("datasource.provider"),
			Host:       v.GetString("datasource.host"),
			Port:       v.GetInt("datasource.port"),
			User:       v.GetString("datasource.user"),
			Password:   v.GetString("datasource.password"),
			Database:   v.GetString("datasource.database"),
			Schema:     v.GetString("datasource.schema"),
			Path:       v.GetString("datasource.path"),
			Extensions: v.GetStringSlice("datasource.extensions"),
		},
		Generator: Generator{
			Name:            v.GetString("generator.name"),
			Provider:        v.GetString("generator.provider"),
			Output:          v.GetString("generator.output"),
			BinaryTargets:   v.GetStringSlice("generator.binaryTargets"),
			PreviewFeatures: v.GetStringSlice("generator.previewFeatures"),
			EngineType:      v.GetString("generator.engineType"),
		},
		RelationMode:      v.GetString("relationMode"),
		ShadowDatabaseURL: v.GetString("shadowDatabaseUrl"),
		DirectURL:         v.GetString("directUrl"),
	}

	return cfg, nil
}

// Save writes the configuration as YAML at path.
func Save(cfg *Config, path string) error {
	v := viper.New()
	v.SetFs(AppFs)

	v.Set("datasource.provider", cfg.Datasource.Provider)

	if cfg.Datasource.Path != "" {
		v.Set("datasource.path", cfg.Datasource.Path)
	}

	if cfg.Datasource.Host != "" {
		v.Set("datasource.host", cfg.Datasource.Host)
		v.Set("datasource.port", cfg.Datasource.Port)
		v.Set("datasource.user", cfg.Datasource.User)
		v.Set("datasource.password", cfg.Datasource.Password)
		v.Set("datasource.database", cfg.Datasource.Database)
	}

	if cfg.Datasource.Schema != "" {
		v.Set("datasource.schema", cfg.Datasource.Schema)
	}

	if len(cfg.Datasource.Extensions) > 0 {
		v.Set("datasource.extensions", cfg.Datasource.Extensions)
	}

	if cfg.Generator.Provider != "" {
		v.Set("generator.name", cfg.Generator.Name)
		v.Set("generator.provider", cfg.Generator.Provider)
		v.Set("generator.output", cfg.Generator.Output)
	}

	if cfg.RelationMode != "" {
		v.Set("relationMode", cfg.RelationMode)
	}

	return v.WriteConfigAs(path)
}

// DefaultPort substitutes the well-known port of a provider when the
// configured one is zero.
func DefaultPort(provider string, port int) int {
	if port != 0 {
		return port
	}

	switch provider {
	case "postgresql", "postgres":
		return 5432
	case "cockroachdb":
		return 26257
	case "mysql":
		return 3306
	case "sqlserver":
		return 1433
	case "mongodb":
		return 27017
	}

	return 0
}

// Provider assembles the typed datasource provider, reporting false
// when none is configured.
func (c *Config) Provider() (prisma.Provider, bool) {
	d := c.Datasource

	schema := d.Schema
	if schema == "" {
		schema = "public"
	}

	switch d.Provider {
	case "postgresql", "postgres":
		return prisma.PostgreSQL{
			User:       d.User,
			Password:   d.Password,
			Host:       d.Host,
			Port:       DefaultPort(d.Provider, d.Port),
			Database:   d.Database,
			Schema:     schema,
			Extensions: d.Extensions,
		}, true
	case "cockroachdb":
		return prisma.CockroachDB{
			User:     d.User,
			Password: d.Password,
			Host:     d.Host,
			Port:     DefaultPort(d.Provider, d.Port),
			Database: d.Database,
			Schema:   schema,
		}, true
	case "mysql":
		return prisma.MySQL{
			User:     d.User,
			Password: d.Password,
			Host:     d.Host,
			Port:     DefaultPort(d.Provider, d.Port),
			Database: d.Database,
		}, true
	case "sqlserver":
		return prisma.SQLServer{
			User:     d.User,
			Password: d.Password,
			Host:     d.Host,
			Port:     DefaultPort(d.Provider, d.Port),
			Database: d.Database,
		}, true
	case "mongodb":
		return prisma.MongoDB{
			User:     d.User,
			Password: d.Password,
			Host:     d.Host,
			Port:     DefaultPort(d.Provider, d.Port),
			Database: d.Database,
		}, true
	case "sqlite":
		return prisma.SQLite{Path: d.Path}, true
	}

	return nil, false
}

// DataSourceBlock assembles the datasource block for the generated
// schema, reporting false when no provider is configured.
func (c *Config) DataSourceBlock() (*prisma.DataSource, bool) {
	provider, ok := c.Provider()
	if !ok {
		return nil, false
	}

	return &prisma.DataSource{
		Name:              "db",
		Provider:          provider,
		ShadowDatabaseURL: c.ShadowDatabaseURL,
		DirectURL:         c.DirectURL,
		RelationMode:      prisma.RelationMode(c.RelationMode),
	}, true
}

// GeneratorBlock assembles the generator block for the generated
// schema, reporting false when no generator is configured.
func (c *Config) GeneratorBlock() (prisma.Generator, bool) {
	g := c.Generator
	if g.Provider == "" {
		return prisma.Generator{}, false
	}

	name := g.Name
	if name == "" {
		name = "client"
	}

	targets := make([]prisma.BinaryTarget, 0, len(g.BinaryTargets))
	for _, target := range g.BinaryTargets {
		targets = append(targets, prisma.BinaryTarget(target))
	}

	features := make([]prisma.PreviewFeature, 0, len(g.PreviewFeatures))
	for _, feature := range g.PreviewFeatures {
		features = append(features, prisma.PreviewFeature(feature))
	}

	return prisma.Generator{
		Name:            name,
		Provider:        prisma.GeneratorProvider(g.Provider),
		Output:          g.Output,
		BinaryTargets:   targets,
		PreviewFeatures: features,
		EngineType:      prisma.EngineType(g.EngineType),
	}, true
}

// DatabaseURL resolves the connection string, preferring DATABASE_URL
// over the configured datasource.
func (c *Config) DatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	if provider, ok := c.Provider(); ok {
		return provider.URL()
	}

	return ""
}
