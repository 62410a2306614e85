// Package db carries the versioned schema migrations. The files are embedded
// so the migration tool and the bball setup path run the same DDL.
package db

import "embed"

const (
	MigrationsDir = "migrations"

	// CreateTablesMigration creates state, color, team and player.
	CreateTablesMigration = MigrationsDir + "/000001_create_basketball_tables.up.sql"
	DropTablesMigration   = MigrationsDir + "/000001_create_basketball_tables.down.sql"
)

//go:embed migrations/*.sql
var Migrations embed.FS
