package statement

import (
	"context"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrMissingObject marks failures caused by a table or other schema
	// object that does not exist. Callers may treat it as recoverable.
	ErrMissingObject = crerr.New("schema object does not exist")
	// ErrStatementFailed marks every other execution failure.
	ErrStatementFailed = crerr.New("statement failed")
)

// Statement is one SQL statement with its bound arguments.
type Statement struct {
	Query string
	Args  []any
}

func New(query string, args ...any) Statement {
	return Statement{Query: query, Args: args}
}

// Executor submits statements to the relational store.
type Executor interface {
	// Exec runs stmts as one unit of work: all commit or none do.
	Exec(ctx context.Context, stmts ...Statement) error
	// Select runs a read-only query and scans every row into dest, which
	// must be a pointer to a slice. It never commits.
	Select(ctx context.Context, dest any, query string, args ...any) error
}

func IsMissingObject(err error) bool {
	return crerr.Is(err, ErrMissingObject)
}
