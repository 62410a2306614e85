package usecase

import (
	"fmt"

	"github.com/riskibarqy/acc-bball/internal/domain/report"
	"github.com/riskibarqy/acc-bball/internal/domain/statement"
	qb "github.com/riskibarqy/acc-bball/internal/platform/querybuilder"
)

var playerColumns = []string{
	"player_id",
	"team_id",
	"uniform_num",
	"first_name",
	"last_name",
	"mpg",
	"ppg",
	"rpg",
	"apg",
	"spg",
	"bpg",
}

const (
	joinTeamOnPlayer  = "team.team_id = player.team_id"
	joinColorOnTeam   = "color.color_id = team.color_id"
	joinStateOnTeam   = "state.state_id = team.state_id"
	reportTablePlayer = "player"
	reportTableTeam   = "team"
	reportTableColor  = "color"
	reportTableState  = "state"
)

// PlayersByStatRangeQuery selects every player column, filtered by the
// enabled ranges in column order. With nothing enabled it selects all rows.
func PlayersByStatRangeQuery(filter report.PlayerStatFilter) (statement.Statement, error) {
	active := filter.Active()
	conditions := make([]qb.Condition, 0, len(active))
	for _, r := range active {
		conditions = append(conditions, qb.Between(r.Column, r.Min, r.Max))
	}

	query, args, err := qb.Select(playerColumns...).
		From(reportTablePlayer).
		Where(conditions...).
		ToSQL()
	if err != nil {
		return statement.Statement{}, fmt.Errorf("build players by stat range query: %w", err)
	}
	return statement.New(query, args...), nil
}

func TeamsByColorQuery(in TeamsByColorInput) (statement.Statement, error) {
	query, args, err := qb.Select("team.name").
		From(reportTableTeam).
		Join(reportTableColor, joinColorOnTeam).
		Where(qb.Eq("color.name", in.Color)).
		ToSQL()
	if err != nil {
		return statement.Statement{}, fmt.Errorf("build teams by color query: %w", err)
	}
	return statement.New(query, args...), nil
}

func PlayersByTeamQuery(in PlayersByTeamInput) (statement.Statement, error) {
	query, args, err := qb.Select("player.first_name", "player.last_name").
		From(reportTablePlayer).
		Join(reportTableTeam, joinTeamOnPlayer).
		Where(qb.Eq("team.name", in.Team)).
		OrderBy("player.ppg DESC").
		ToSQL()
	if err != nil {
		return statement.Statement{}, fmt.Errorf("build players by team query: %w", err)
	}
	return statement.New(query, args...), nil
}

func PlayersByStateAndColorQuery(in PlayersByStateAndColorInput) (statement.Statement, error) {
	query, args, err := qb.Select("player.first_name", "player.last_name", "player.uniform_num").
		From(reportTablePlayer).
		Join(reportTableTeam, joinTeamOnPlayer).
		Join(reportTableState, joinStateOnTeam).
		Join(reportTableColor, joinColorOnTeam).
		Where(
			qb.Eq("state.name", in.State),
			qb.Eq("color.name", in.Color),
		).
		ToSQL()
	if err != nil {
		return statement.Statement{}, fmt.Errorf("build players by state and color query: %w", err)
	}
	return statement.New(query, args...), nil
}

func PlayersByMinWinsQuery(in PlayersByMinWinsInput) (statement.Statement, error) {
	query, args, err := qb.Select("player.first_name", "player.last_name", "team.name", "team.wins").
		From(reportTablePlayer).
		Join(reportTableTeam, joinTeamOnPlayer).
		Where(qb.Gt("team.wins", in.MinWins)).
		ToSQL()
	if err != nil {
		return statement.Statement{}, fmt.Errorf("build players by min wins query: %w", err)
	}
	return statement.New(query, args...), nil
}
