package app

import (
	"context"
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/acc-bball/internal/config"
	"github.com/riskibarqy/acc-bball/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/acc-bball/internal/infrastructure/textfile"
	"github.com/riskibarqy/acc-bball/internal/interfaces/console"
	"github.com/riskibarqy/acc-bball/internal/platform/logging"
	"github.com/riskibarqy/acc-bball/internal/usecase"
)

// App holds the wired services behind the bball commands.
type App struct {
	db      *sqlx.DB
	Schema  *usecase.SchemaService
	Loader  *usecase.LoadService
	Reports *console.Reports
}

// New opens the database and wires repositories, services and the console.
// Report tables are written to out.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger, out io.Writer) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := OpenDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	executor := postgres.NewExecutor(db, logger)
	repos := usecase.LoadRepositories{
		States:  postgres.NewStateRepository(executor),
		Colors:  postgres.NewColorRepository(executor),
		Teams:   postgres.NewTeamRepository(executor),
		Players: postgres.NewPlayerRepository(executor),
	}
	source := textfile.NewSource(textfile.Paths{
		State:  cfg.StateFile,
		Color:  cfg.ColorFile,
		Team:   cfg.TeamFile,
		Player: cfg.PlayerFile,
	}, logger)

	reportSvc := usecase.NewReportService(executor, logger)

	return &App{
		db:      db,
		Schema:  usecase.NewSchemaService(postgres.NewSchemaRepository(executor), logger),
		Loader:  usecase.NewLoadService(source, repos, cfg.LoaderVerifyIDs, logger),
		Reports: console.NewReports(reportSvc, console.NewRenderer(out, cfg.RenderFormat)),
	}, nil
}

// Setup drops and recreates the tables, then bulk loads the input files.
func (a *App) Setup(ctx context.Context) error {
	if err := a.Schema.Reset(ctx); err != nil {
		return err
	}
	if _, err := a.Loader.LoadFromSource(ctx); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	return nil
}

// Exercise runs setup followed by the five reference reports.
func (a *App) Exercise(ctx context.Context) error {
	if err := a.Setup(ctx); err != nil {
		return err
	}
	return a.Reports.Exercise(ctx)
}

func (a *App) Close() error {
	return a.db.Close()
}
