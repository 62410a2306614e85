package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/lib/pq"
	"github.com/riskibarqy/acc-bball/db"
	"github.com/riskibarqy/acc-bball/internal/domain/color"
	"github.com/riskibarqy/acc-bball/internal/domain/player"
	"github.com/riskibarqy/acc-bball/internal/domain/state"
	"github.com/riskibarqy/acc-bball/internal/domain/statement"
	"github.com/riskibarqy/acc-bball/internal/domain/team"
	statementmock "github.com/riskibarqy/acc-bball/internal/mocks/domain/statement"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStateRepository_Insert(t *testing.T) {
	ctx := context.Background()
	executor := statementmock.NewExecutor(t)
	repo := NewStateRepository(executor)

	executor.
		On("Exec", ctx, statement.New("INSERT INTO state (state_id, name) VALUES ($1, $2)", int64(1), "NC")).
		Return(nil).
		Once()

	require.NoError(t, repo.Insert(ctx, state.State{ID: 1, Name: "NC"}))
}

func TestColorRepository_Insert_WrapsFailure(t *testing.T) {
	ctx := context.Background()
	executor := statementmock.NewExecutor(t)
	repo := NewColorRepository(executor)

	executor.
		On("Exec", ctx, statement.New("INSERT INTO color (color_id, name) VALUES ($1, $2)", int64(3), "Orange")).
		Return(errors.New("duplicate key value violates unique constraint \"colorid_pk\"")).
		Once()

	err := repo.Insert(ctx, color.Color{ID: 3, Name: "Orange"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "insert color")
}

func TestTeamRepository_Insert(t *testing.T) {
	ctx := context.Background()
	executor := statementmock.NewExecutor(t)
	repo := NewTeamRepository(executor)

	executor.
		On("Exec", ctx, statement.New(
			"INSERT INTO team (team_id, name, state_id, color_id, wins, losses) VALUES ($1, $2, $3, $4, $5, $6)",
			int64(1), "Duke", int64(1), int64(1), 30, 5,
		)).
		Return(nil).
		Once()

	require.NoError(t, repo.Insert(ctx, team.Team{ID: 1, Name: "Duke", StateID: 1, ColorID: 1, Wins: 30, Losses: 5}))
}

func TestPlayerRepository_Insert_BindsQuotedNames(t *testing.T) {
	ctx := context.Background()
	executor := statementmock.NewExecutor(t)
	repo := NewPlayerRepository(executor)

	executor.
		On("Exec", ctx, mock.MatchedBy(func(stmt statement.Statement) bool {
			return strings.HasPrefix(stmt.Query, "INSERT INTO player (player_id, team_id, uniform_num, first_name, last_name, mpg, ppg, rpg, apg, spg, bpg) VALUES ($1, ") &&
				!strings.Contains(stmt.Query, "O'Brien") &&
				len(stmt.Args) == 11 &&
				stmt.Args[4] == "O'Brien" &&
				stmt.Args[9] == 1.7
		})).
		Return(nil).
		Once()

	require.NoError(t, repo.Insert(ctx, player.Player{
		ID: 1, TeamID: 1, UniformNum: 4, FirstName: "Pat", LastName: "O'Brien",
		MinutesPerGame: 34, PointsPerGame: 19, ReboundsPerGame: 4, AssistsPerGame: 3,
		StealsPerGame: 1.7, BlocksPerGame: 0.4,
	}))
}

func TestSchemaRepository_DropTable(t *testing.T) {
	ctx := context.Background()
	executor := statementmock.NewExecutor(t)
	repo := NewSchemaRepository(executor)

	executor.On("Exec", ctx, statement.New("DROP TABLE player")).Return(nil).Once()

	require.NoError(t, repo.DropTable(ctx, "player"))
}

func TestSchemaRepository_DropTable_KeepsMissingObjectMark(t *testing.T) {
	ctx := context.Background()
	executor := statementmock.NewExecutor(t)
	repo := NewSchemaRepository(executor)

	missing := classifyError(&pq.Error{Code: pqUndefinedTable, Message: `table "team" does not exist`}, "exec statement")
	executor.On("Exec", ctx, statement.New("DROP TABLE team")).Return(missing).Once()

	err := repo.DropTable(ctx, "team")
	require.True(t, statement.IsMissingObject(err), "expected missing object, got %v", err)
}

func TestSchemaRepository_DropTable_RejectsUnknownTable(t *testing.T) {
	executor := statementmock.NewExecutor(t)
	repo := NewSchemaRepository(executor)

	require.Error(t, repo.DropTable(context.Background(), "player; DROP TABLE team"))
}

func TestSchemaRepository_CreateTables_RunsUpMigration(t *testing.T) {
	ctx := context.Background()
	executor := statementmock.NewExecutor(t)
	repo := NewSchemaRepository(executor)

	prefix := func(want string) any {
		return mock.MatchedBy(func(stmt statement.Statement) bool {
			return strings.HasPrefix(stmt.Query, want) && !strings.Contains(stmt.Query, ";") && len(stmt.Args) == 0
		})
	}
	executor.
		On("Exec", ctx,
			prefix("CREATE TABLE state ("),
			prefix("CREATE TABLE color ("),
			prefix("CREATE TABLE team ("),
			prefix("CREATE TABLE player ("),
		).
		Return(nil).
		Once()

	require.NoError(t, repo.CreateTables(ctx))
}

func TestSchemaRepository_CreateTables_MissingMigration(t *testing.T) {
	executor := statementmock.NewExecutor(t)
	repo := &SchemaRepository{executor: executor, ddl: fstest.MapFS{}}

	require.Error(t, repo.CreateTables(context.Background()))
}

func TestCreateTableStatements_SplitsOnSemicolon(t *testing.T) {
	fsys := fstest.MapFS{
		db.CreateTablesMigration: {Data: []byte("CREATE TABLE a (x INT);\n\nCREATE TABLE b (\n    y INT\n);\n")},
	}

	stmts, err := createTableStatements(fsys)
	require.NoError(t, err)
	require.Equal(t, []statement.Statement{
		statement.New("CREATE TABLE a (x INT)"),
		statement.New("CREATE TABLE b (\n    y INT\n)"),
	}, stmts)
}

func TestSchemaDDL_ConstraintNames(t *testing.T) {
	stmts, err := createTableStatements(db.Migrations)
	require.NoError(t, err)
	require.Len(t, stmts, 4)

	wants := [][]string{
		{"stateid_pk", "CHAR(2)"},
		{"colorid_pk"},
		{"teamid_pk", "stateidfk", "coloridnfk", "ON DELETE SET NULL", "ON UPDATE CASCADE"},
		{"playerid_pk", "teamidfk", "DECIMAL(2,1)"},
	}
	for i, stmt := range stmts {
		for _, want := range wants[i] {
			if !strings.Contains(stmt.Query, want) {
				t.Fatalf("expected %q in:\n%s", want, stmt.Query)
			}
		}
	}
}
