package postgres

import (
	"context"

	"github.com/riskibarqy/acc-bball/internal/domain/schema"
	"github.com/riskibarqy/acc-bball/internal/domain/statement"
	"github.com/riskibarqy/acc-bball/internal/domain/team"
)

type TeamRepository struct {
	executor statement.Executor
}

func NewTeamRepository(executor statement.Executor) *TeamRepository {
	return &TeamRepository{executor: executor}
}

func (r *TeamRepository) Insert(ctx context.Context, row team.Team) error {
	return insertModel(ctx, r.executor, schema.TableTeam, teamTableModel{
		ID:      row.ID,
		Name:    row.Name,
		StateID: row.StateID,
		ColorID: row.ColorID,
		Wins:    row.Wins,
		Losses:  row.Losses,
	})
}
