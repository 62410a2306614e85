package postgres

type stateTableModel struct {
	ID   int64  `db:"state_id"`
	Name string `db:"name"`
}
