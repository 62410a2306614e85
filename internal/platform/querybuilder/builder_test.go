package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("team.name").
		From("team").
		Join("color", "color.color_id = team.color_id").
		Where(Eq("color.name", "Orange")).
		OrderBy("team.name").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT team.name FROM team JOIN color ON color.color_id = team.color_id WHERE color.name = $1 ORDER BY team.name"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "Orange" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_BetweenAndGt(t *testing.T) {
	query, args, err := Select("*").
		From("player").
		Where(Between("mpg", 35, 40), Between("spg", 0.5, 1.7), Gt("ppg", 10)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM player WHERE mpg BETWEEN $1 AND $2 AND spg BETWEEN $3 AND $4 AND ppg > $5"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 5 || args[0] != 35 || args[1] != 40 || args[2] != 0.5 || args[3] != 1.7 || args[4] != 10 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_NoConditions(t *testing.T) {
	query, args, err := Select("*").From("player").ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT * FROM player" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %+v", args)
	}
}

func TestSelectBuilder_Validation(t *testing.T) {
	if _, _, err := Select().From("player").ToSQL(); err == nil {
		t.Fatalf("expected error without columns")
	}
	if _, _, err := Select("*").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
	if _, _, err := Select("*").From("player").Join("team", "").ToSQL(); err == nil {
		t.Fatalf("expected error for join without condition")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("state").
		Columns("state_id", "name").
		Values(int64(1), "NC").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO state (state_id, name) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(1) || args[1] != "NC" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("state").Columns("state_id", "name").Values(int64(1)).ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID      int64  `db:"color_id"`
		Name    string `db:"name"`
		Skipped string `db:"-"`
		hidden  string
	}

	query, args, err := InsertModel("color", row{ID: 3, Name: "Orange", Skipped: "x", hidden: "y"})
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}
	if query != "INSERT INTO color (color_id, name) VALUES ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != int64(3) || args[1] != "Orange" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModel("color", (*row)(nil)); err == nil {
		t.Fatalf("expected error for nil model")
	}
	if _, _, err := InsertModel("color", 42); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
}
