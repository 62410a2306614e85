package postgres

import (
	"context"

	"github.com/riskibarqy/acc-bball/internal/domain/schema"
	"github.com/riskibarqy/acc-bball/internal/domain/state"
	"github.com/riskibarqy/acc-bball/internal/domain/statement"
)

type StateRepository struct {
	executor statement.Executor
}

func NewStateRepository(executor statement.Executor) *StateRepository {
	return &StateRepository{executor: executor}
}

func (r *StateRepository) Insert(ctx context.Context, row state.State) error {
	return insertModel(ctx, r.executor, schema.TableState, stateTableModel{
		ID:   row.ID,
		Name: row.Name,
	})
}
