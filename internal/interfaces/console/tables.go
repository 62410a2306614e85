package console

import (
	"database/sql"

	"github.com/riskibarqy/acc-bball/internal/domain/report"
)

func playerRowsTable(rows []report.PlayerRow) Table {
	t := Table{Columns: []string{
		"player_id", "team_id", "uniform_num", "first_name", "last_name",
		"mpg", "ppg", "rpg", "apg", "spg", "bpg",
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.PlayerID, nullableInt64(r.TeamID), r.UniformNum, r.FirstName, r.LastName,
			r.MPG, r.PPG, r.RPG, r.APG, r.SPG, r.BPG,
		})
	}
	return t
}

// nullableInt64 maps SQL NULL to nil, which renders as an empty field.
func nullableInt64(v sql.NullInt64) any {
	if !v.Valid {
		return nil
	}
	return v.Int64
}

func teamNamesTable(rows []report.TeamName) Table {
	t := Table{Columns: []string{"name"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Name})
	}
	return t
}

func playerNamesTable(rows []report.PlayerName) Table {
	t := Table{Columns: []string{"first_name", "last_name"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.FirstName, r.LastName})
	}
	return t
}

func playerUniformsTable(rows []report.PlayerUniform) Table {
	t := Table{Columns: []string{"first_name", "last_name", "uniform_num"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.FirstName, r.LastName, r.UniformNum})
	}
	return t
}

func playerTeamWinsTable(rows []report.PlayerTeamWins) Table {
	t := Table{Columns: []string{"first_name", "last_name", "name", "wins"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.FirstName, r.LastName, r.TeamName, r.Wins})
	}
	return t
}
