package postgres

type playerTableModel struct {
	ID         int64   `db:"player_id"`
	TeamID     int64   `db:"team_id"`
	UniformNum int     `db:"uniform_num"`
	FirstName  string  `db:"first_name"`
	LastName   string  `db:"last_name"`
	MPG        int     `db:"mpg"`
	PPG        int     `db:"ppg"`
	RPG        int     `db:"rpg"`
	APG        int     `db:"apg"`
	SPG        float64 `db:"spg"`
	BPG        float64 `db:"bpg"`
}
