package postgres

type teamTableModel struct {
	ID      int64  `db:"team_id"`
	Name    string `db:"name"`
	StateID int64  `db:"state_id"`
	ColorID int64  `db:"color_id"`
	Wins    int    `db:"wins"`
	Losses  int    `db:"losses"`
}
