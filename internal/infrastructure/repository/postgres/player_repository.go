package postgres

import (
	"context"
	"fmt"

	"github.com/riskibarqy/acc-bball/internal/domain/player"
	"github.com/riskibarqy/acc-bball/internal/domain/schema"
	"github.com/riskibarqy/acc-bball/internal/domain/statement"
	qb "github.com/riskibarqy/acc-bball/internal/platform/querybuilder"
)

type PlayerRepository struct {
	executor statement.Executor
}

func NewPlayerRepository(executor statement.Executor) *PlayerRepository {
	return &PlayerRepository{executor: executor}
}

func (r *PlayerRepository) Insert(ctx context.Context, row player.Player) error {
	return insertModel(ctx, r.executor, schema.TablePlayer, playerTableModel{
		ID:         row.ID,
		TeamID:     row.TeamID,
		UniformNum: row.UniformNum,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		MPG:        row.MinutesPerGame,
		PPG:        row.PointsPerGame,
		RPG:        row.ReboundsPerGame,
		APG:        row.AssistsPerGame,
		SPG:        row.StealsPerGame,
		BPG:        row.BlocksPerGame,
	})
}

// insertModel writes one row in its own unit of work.
func insertModel(ctx context.Context, executor statement.Executor, table string, model any) error {
	query, args, err := qb.InsertModel(table, model)
	if err != nil {
		return fmt.Errorf("build insert %s query: %w", table, err)
	}
	if err := executor.Exec(ctx, statement.New(query, args...)); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}
