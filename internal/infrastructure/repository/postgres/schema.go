package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/riskibarqy/acc-bball/db"
	"github.com/riskibarqy/acc-bball/internal/domain/schema"
	"github.com/riskibarqy/acc-bball/internal/domain/statement"
)

var knownTables = map[string]struct{}{
	schema.TableState:  {},
	schema.TableColor:  {},
	schema.TableTeam:   {},
	schema.TablePlayer: {},
}

type SchemaRepository struct {
	executor statement.Executor
	ddl      fs.FS
}

func NewSchemaRepository(executor statement.Executor) *SchemaRepository {
	return &SchemaRepository{executor: executor, ddl: db.Migrations}
}

// DropTable issues a plain DROP TABLE so a missing table surfaces as an
// error the caller can classify.
func (r *SchemaRepository) DropTable(ctx context.Context, table string) error {
	if _, ok := knownTables[table]; !ok {
		return fmt.Errorf("drop table: unknown table %q", table)
	}
	if err := r.executor.Exec(ctx, statement.New("DROP TABLE "+table)); err != nil {
		return fmt.Errorf("drop table %s: %w", table, err)
	}
	return nil
}

// CreateTables runs the statements of the first up migration in one unit of
// work. Foreign key columns there stay nullable so ON DELETE SET NULL applies.
func (r *SchemaRepository) CreateTables(ctx context.Context) error {
	stmts, err := createTableStatements(r.ddl)
	if err != nil {
		return err
	}
	if err := r.executor.Exec(ctx, stmts...); err != nil {
		return fmt.Errorf("create roster tables: %w", err)
	}
	return nil
}

// createTableStatements splits the up migration on ";". The DDL carries no
// string literals, so a plain split is exact.
func createTableStatements(fsys fs.FS) ([]statement.Statement, error) {
	raw, err := fs.ReadFile(fsys, db.CreateTablesMigration)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", db.CreateTablesMigration, err)
	}

	var stmts []statement.Statement
	for _, part := range strings.Split(string(raw), ";") {
		if query := strings.TrimSpace(part); query != "" {
			stmts = append(stmts, statement.New(query))
		}
	}
	if len(stmts) == 0 {
		return nil, fmt.Errorf("%s has no statements", db.CreateTablesMigration)
	}
	return stmts, nil
}
