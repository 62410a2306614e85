package postgres

type colorTableModel struct {
	ID   int64  `db:"color_id"`
	Name string `db:"name"`
}
