package console

import (
	"context"
	"fmt"
	"io"

	"github.com/riskibarqy/acc-bball/internal/domain/report"
	"github.com/riskibarqy/acc-bball/internal/domain/statement"
	qb "github.com/riskibarqy/acc-bball/internal/platform/querybuilder"
	"github.com/riskibarqy/acc-bball/internal/usecase"
)

type ReportService interface {
	PlayersByStatRange(ctx context.Context, filter report.PlayerStatFilter) ([]report.PlayerRow, error)
	TeamsByColor(ctx context.Context, in usecase.TeamsByColorInput) ([]report.TeamName, error)
	PlayersByTeam(ctx context.Context, in usecase.PlayersByTeamInput) ([]report.PlayerName, error)
	PlayersByStateAndColor(ctx context.Context, in usecase.PlayersByStateAndColorInput) ([]report.PlayerUniform, error)
	PlayersByMinWins(ctx context.Context, in usecase.PlayersByMinWinsInput) ([]report.PlayerTeamWins, error)
}

// Reports runs report requests and renders their results.
type Reports struct {
	service  ReportService
	renderer *Renderer
}

func NewReports(service ReportService, renderer *Renderer) *Reports {
	return &Reports{service: service, renderer: renderer}
}

func (r *Reports) Run(ctx context.Context, req Request) error {
	table, err := r.fetch(ctx, req)
	if err != nil {
		return fmt.Errorf("query%d: %w", req.Query, err)
	}
	return r.renderer.Render(table)
}

// Exercise runs the reference reports in order, each under a separator line.
func (r *Reports) Exercise(ctx context.Context) error {
	for _, req := range ExerciseRequests() {
		if err := r.renderer.Line(fmt.Sprintf("-------------Query%d-------------", req.Query)); err != nil {
			return err
		}
		if err := r.Run(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reports) fetch(ctx context.Context, req Request) (Table, error) {
	switch req.Query {
	case 1:
		rows, err := r.service.PlayersByStatRange(ctx, req.Filter)
		return playerRowsTable(rows), err
	case 2:
		rows, err := r.service.TeamsByColor(ctx, usecase.TeamsByColorInput{Color: req.Color})
		return teamNamesTable(rows), err
	case 3:
		rows, err := r.service.PlayersByTeam(ctx, usecase.PlayersByTeamInput{Team: req.Team})
		return playerNamesTable(rows), err
	case 4:
		rows, err := r.service.PlayersByStateAndColor(ctx, usecase.PlayersByStateAndColorInput{State: req.State, Color: req.Color})
		return playerUniformsTable(rows), err
	case 5:
		rows, err := r.service.PlayersByMinWins(ctx, usecase.PlayersByMinWinsInput{MinWins: req.MinWins})
		return playerTeamWinsTable(rows), err
	default:
		return Table{}, fmt.Errorf("unknown query %d", req.Query)
	}
}

// WriteSQL prints the statement a request would run, with values inlined.
func WriteSQL(w io.Writer, req Request) error {
	stmt, err := buildStatement(req)
	if err != nil {
		return fmt.Errorf("query%d: %w", req.Query, err)
	}
	_, err = io.WriteString(w, qb.Inline(stmt.Query, stmt.Args)+"\n")
	return err
}

func buildStatement(req Request) (statement.Statement, error) {
	switch req.Query {
	case 1:
		return usecase.PlayersByStatRangeQuery(req.Filter)
	case 2:
		return usecase.TeamsByColorQuery(usecase.TeamsByColorInput{Color: req.Color})
	case 3:
		return usecase.PlayersByTeamQuery(usecase.PlayersByTeamInput{Team: req.Team})
	case 4:
		return usecase.PlayersByStateAndColorQuery(usecase.PlayersByStateAndColorInput{State: req.State, Color: req.Color})
	case 5:
		return usecase.PlayersByMinWinsQuery(usecase.PlayersByMinWinsInput{MinWins: req.MinWins})
	default:
		return statement.Statement{}, fmt.Errorf("unknown query %d", req.Query)
	}
}
