package migrate

import (
	"errors"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"

	"workspace-control-plane/backend/internal/db"
)

func TestRun_EmptyDSN(t *testing.T) {
	err := Run("", Up)
	if err == nil {
		t.Fatal("Run with empty DSN must fail")
	}
	if !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("error %q should point at DATABASE_URL", err)
	}
}

func TestRun_RejectsUnknownDirection(t *testing.T) {
	for _, dir := range []Direction{"", "sideways", "UP", "Down"} {
		err := Run("postgres://localhost/wcp", dir)
		if err == nil {
			t.Errorf("Run(%q) expected error", dir)
			continue
		}
		if !strings.Contains(err.Error(), "direction") {
			t.Errorf("Run(%q) error %q should name the direction", dir, err)
		}
	}
}

func TestErrNoChangeIsComparable(t *testing.T) {
	if ErrNoChange == nil {
		t.Fatal("ErrNoChange must be a sentinel")
	}
	if !errors.Is(ErrNoChange, ErrNoChange) {
		t.Error("ErrNoChange must work with errors.Is")
	}
}

// The embedded migration set must load as an iofs source and contain the
// initial schema pair; a missing or misnamed file would only surface at
// deploy time otherwise.
func TestEmbeddedMigrationsLoad(t *testing.T) {
	src, err := iofs.New(db.MigrationFS, "migrations")
	if err != nil {
		t.Fatalf("iofs.New: %v", err)
	}
	defer src.Close()

	first, err := src.First()
	if err != nil {
		t.Fatalf("First: %v", err)
	}
	if first != 1 {
		t.Errorf("first migration version = %d, want 1", first)
	}

	entries, err := db.MigrationFS.ReadDir("migrations")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var ups, downs int
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		default:
			t.Errorf("unexpected file in migrations: %s", e.Name())
		}
	}
	if ups == 0 || ups != downs {
		t.Errorf("migration files: %d up, %d down; want matched non-empty pairs", ups, downs)
	}
}
