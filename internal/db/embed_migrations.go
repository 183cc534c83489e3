package db

import "embed"

// MigrationFS embeds the SQL migration files so cmd/migrate ships them inside
// the binary.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
