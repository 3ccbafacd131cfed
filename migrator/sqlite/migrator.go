// Package sqlite applies the embedded attendance schema migrations.
package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

const migrationsDir = "sql"

//go:embed sql/*.sql
var migrationFiles embed.FS

// Migrate brings the attendance schema up to date. Applied files are
// tracked by darwin, so running it on every start is safe.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(migrationFiles, migrationsDir); err != nil {
		return fmt.Errorf("failed to migrate attendance schema: %w", err)
	}
	return nil
}
