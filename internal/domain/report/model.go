package report

import "database/sql"

// PlayerRow is a full player record as stored. TeamID is NULL once the
// player's team has been deleted.
type PlayerRow struct {
	PlayerID   int64         `db:"player_id"`
	TeamID     sql.NullInt64 `db:"team_id"`
	UniformNum int           `db:"uniform_num"`
	FirstName  string        `db:"first_name"`
	LastName   string        `db:"last_name"`
	MPG        int           `db:"mpg"`
	PPG        int           `db:"ppg"`
	RPG        int           `db:"rpg"`
	APG        int           `db:"apg"`
	SPG        float64       `db:"spg"`
	BPG        float64       `db:"bpg"`
}

type TeamName struct {
	Name string `db:"name"`
}

type PlayerName struct {
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

type PlayerUniform struct {
	FirstName  string `db:"first_name"`
	LastName   string `db:"last_name"`
	UniformNum int    `db:"uniform_num"`
}

type PlayerTeamWins struct {
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	TeamName  string `db:"name"`
	Wins      int    `db:"wins"`
}
