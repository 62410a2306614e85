package postgres

import (
	"errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"github.com/riskibarqy/acc-bball/internal/domain/statement"
)

const (
	pqUndefinedTable  = "42P01"
	pqUndefinedObject = "42704"
)

// classifyError wraps err with op and marks it as either a missing schema
// object or a generic statement failure.
func classifyError(err error, op string) error {
	if err == nil {
		return nil
	}
	wrapped := crerr.Wrap(err, op)
	if isMissingObject(err) {
		return crerr.Mark(wrapped, statement.ErrMissingObject)
	}
	return crerr.Mark(wrapped, statement.ErrStatementFailed)
}

func isMissingObject(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch string(pqErr.Code) {
	case pqUndefinedTable, pqUndefinedObject:
		return true
	default:
		return false
	}
}
