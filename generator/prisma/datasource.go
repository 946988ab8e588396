package prisma

import (
	"fmt"
	"io"
	"strings"

	"github.com/satishbabariya/dragonfly/generator/printer"
)

// RelationMode selects how referential integrity is enforced.
type RelationMode string

const (
	// RelationModeForeignKeys leaves enforcement to the database.
	RelationModeForeignKeys RelationMode = "foreignKeys"
	// RelationModePrisma emulates foreign keys in the client.
	RelationModePrisma RelationMode = "prisma"
)

// Provider is a datasource connector. Name supplies the provider key,
// URL assembles the connection string.
type Provider interface {
	Name() string
	URL() string
}

// PostgreSQL connects to a PostgreSQL server. Extensions are listed
// in the datasource block even when empty.
type PostgreSQL struct {
	User       string
	Password   string
	Host       string
	Port       int
	Database   string
	Schema     string
	Extensions []string
}

func (PostgreSQL) Name() string {
	return "postgresql"
}

func (p PostgreSQL) URL() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?schema=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.Database,
		p.Schema,
	)
}

// CockroachDB connects to a CockroachDB cluster over the PostgreSQL
// wire protocol.
type CockroachDB struct {
	User     string
	Password string
	Host     string
	Port     int
	Database string
	Schema   string
}

func (CockroachDB) Name() string {
	return "cockroachdb"
}

func (c CockroachDB) URL() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?schema=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
		c.Schema,
	)
}

// MySQL connects to a MySQL server.
type MySQL struct {
	User     string
	Password string
	Host     string
	Port     int
	Database string
}

func (MySQL) Name() string {
	return "mysql"
}

func (m MySQL) URL() string {
	return fmt.Sprintf(
		"mysql://%s:%s@%s:%d/%s",
		m.User,
		m.Password,
		m.Host,
		m.Port,
		m.Database,
	)
}

// SQLServer connects to a Microsoft SQL Server instance.
type SQLServer struct {
	User     string
	Password string
	Host     string
	Port     int
	Database string
}

func (SQLServer) Name() string {
	return "sqlserver"
}

func (s SQLServer) URL() string {
	return fmt.Sprintf(
		"sqlserver://%s:%d;database=%s;user=%s;password=%s;encrypt=true",
		s.Host,
		s.Port,
		s.Database,
		s.User,
		s.Password,
	)
}

// MongoDB connects to a MongoDB cluster.
type MongoDB struct {
	User     string
	Password string
	Host     string
	Port     int
	Database string
}

func (MongoDB) Name() string {
	return "mongodb"
}

func (m MongoDB) URL() string {
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s:%d/%s?ssl=true&connectTimeoutMS=5000",
		m.User,
		m.Password,
		m.Host,
		m.Port,
		m.Database,
	)
}

// SQLite opens a database file relative to the schema.
type SQLite struct {
	Path string
}

func (SQLite) Name() string {
	return "sqlite"
}

func (s SQLite) URL() string {
	return "file:./" + s.Path
}

// DataSource is a `datasource` block.
type DataSource struct {
	Name              string
	Provider          Provider
	ShadowDatabaseURL string
	DirectURL         string
	RelationMode      RelationMode
}

// Print renders the datasource block with the `=` signs of all keys
// in one column. The extensions key appears for PostgreSQL only.
func (d DataSource) Print(level int, w io.Writer) error {
	indentOuter := printer.Indent(tabSize, level)
	indentInner := printer.Indent(tabSize, level+1)

	keys := []string{"provider", "url"}
	values := []string{
		quote(d.Provider.Name()),
		quote(d.Provider.URL()),
	}

	if d.ShadowDatabaseURL != "" {
		keys = append(keys, "shadowDatabaseUrl")
		values = append(values, quote(d.ShadowDatabaseURL))
	}

	if d.DirectURL != "" {
		keys = append(keys, "directUrl")
		values = append(values, quote(d.DirectURL))
	}

	mode := d.RelationMode
	if mode == "" {
		mode = RelationModePrisma
	}

	keys = append(keys, "relationMode")
	values = append(values, quote(string(mode)))

	if postgres, ok := d.Provider.(PostgreSQL); ok {
		keys = append(keys, "extensions")
		values = append(values, "["+strings.Join(postgres.Extensions, ", ")+"]")
	}

	maxKeyLength := 0

	for _, key := range keys {
		if len(key) > maxKeyLength {
			maxKeyLength = len(key)
		}
	}

	if _, err := fmt.Fprintf(w, "%sdatasource %s {\n", indentOuter, d.Name); err != nil {
		return err
	}

	for i, key := range keys {
		if _, err := fmt.Fprintf(
			w,
			"%s%-*s = %s\n",
			indentInner,
			maxKeyLength,
			key,
			values[i],
		); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s}\n", indentOuter)

	return err
}

func quote(value string) string {
	return "\"" + value + "\""
}
