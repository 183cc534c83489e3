// Package migrate applies the embedded workspace schema migrations with
// golang-migrate.
package migrate

import (
	"errors"
	"fmt"

	"workspace-control-plane/backend/internal/db"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Direction selects whether Run upgrades or downgrades the schema.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ErrNoChange reports that the schema is already at the target version.
var ErrNoChange = migrate.ErrNoChange

// Run migrates the database at dsn in the given direction using the SQL files
// embedded in internal/db. ErrNoChange is passed through so callers can treat
// an already-current schema as success.
func Run(dsn string, dir Direction) error {
	if dsn == "" {
		return errors.New("database DSN is empty; set DATABASE_URL")
	}
	if dir != Up && dir != Down {
		return fmt.Errorf("direction must be %q or %q, got %q", Up, Down, dir)
	}

	src, err := iofs.New(db.MigrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if dir == Up {
		err = m.Up()
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return err
}
