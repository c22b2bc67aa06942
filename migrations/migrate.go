// Package migrations embeds the goose migration scripts for both supported
// database backends and applies them at startup.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for the given dialect
// ("postgres" or "sqlite3"). Each dialect keeps its own script directory
// because the DDL type names differ between the backends.
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	var gooseDialect, dir string
	switch dialect {
	case "postgres":
		gooseDialect, dir = "pgx", "postgres"
	case "sqlite3":
		gooseDialect, dir = "sqlite3", "sqlite"
	default:
		return fmt.Errorf("migration error: unknown dialect %q", dialect)
	}

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
