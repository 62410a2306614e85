package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/acc-bball/internal/domain/statement"
	"github.com/riskibarqy/acc-bball/internal/platform/logging"
	qb "github.com/riskibarqy/acc-bball/internal/platform/querybuilder"
)

// Executor implements statement.Executor on a sqlx handle. Writes run inside
// a transaction; reads go straight to the pool.
type Executor struct {
	db     *sqlx.DB
	logger *logging.Logger
}

func NewExecutor(db *sqlx.DB, logger *logging.Logger) *Executor {
	if logger == nil {
		logger = logging.Default()
	}
	return &Executor{db: db, logger: logger}
}

func (e *Executor) Exec(ctx context.Context, stmts ...statement.Statement) error {
	if len(stmts) == 0 {
		return nil
	}

	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return classifyError(err, "begin unit of work")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stmt := range stmts {
		e.logger.DebugContext(ctx, "exec statement", "sql", qb.Inline(stmt.Query, stmt.Args))
		if _, err := tx.ExecContext(ctx, stmt.Query, stmt.Args...); err != nil {
			return classifyError(err, "exec statement")
		}
	}

	if err := tx.Commit(); err != nil {
		return classifyError(err, "commit unit of work")
	}
	return nil
}

func (e *Executor) Select(ctx context.Context, dest any, query string, args ...any) error {
	if err := e.db.SelectContext(ctx, dest, query, args...); err != nil {
		return classifyError(err, "select")
	}
	return nil
}
