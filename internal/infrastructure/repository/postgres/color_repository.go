package postgres

import (
	"context"

	"github.com/riskibarqy/acc-bball/internal/domain/color"
	"github.com/riskibarqy/acc-bball/internal/domain/schema"
	"github.com/riskibarqy/acc-bball/internal/domain/statement"
)

type ColorRepository struct {
	executor statement.Executor
}

func NewColorRepository(executor statement.Executor) *ColorRepository {
	return &ColorRepository{executor: executor}
}

func (r *ColorRepository) Insert(ctx context.Context, row color.Color) error {
	return insertModel(ctx, r.executor, schema.TableColor, colorTableModel{
		ID:   row.ID,
		Name: row.Name,
	})
}
