package schema

import "context"

const (
	TableState  = "state"
	TableColor  = "color"
	TableTeam   = "team"
	TablePlayer = "player"
)

// DropOrder lists tables children first so foreign keys never block a drop.
var DropOrder = []string{TablePlayer, TableTeam, TableState, TableColor}

// Repository provisions the roster tables.
type Repository interface {
	// DropTable removes one table. A missing table is reported as
	// statement.ErrMissingObject.
	DropTable(ctx context.Context, table string) error
	// CreateTables creates all four tables in one unit of work.
	CreateTables(ctx context.Context) error
}
