package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/acc-bball/internal/domain/report"
	"github.com/riskibarqy/acc-bball/internal/domain/statement"
	"github.com/riskibarqy/acc-bball/internal/platform/logging"
	qb "github.com/riskibarqy/acc-bball/internal/platform/querybuilder"
)

type TeamsByColorInput struct {
	Color string
}

type PlayersByTeamInput struct {
	Team string
}

type PlayersByStateAndColorInput struct {
	State string
	Color string
}

// PlayersByMinWinsInput selects players whose team has strictly more than
// MinWins wins.
type PlayersByMinWinsInput struct {
	MinWins int
}

// ReportService answers the five fixed roster reports. String inputs are
// matched exactly through bound parameters, so an empty string is a valid
// filter that matches no row.
type ReportService struct {
	executor statement.Executor
	logger   *logging.Logger
}

func NewReportService(executor statement.Executor, logger *logging.Logger) *ReportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReportService{
		executor: executor,
		logger:   logger,
	}
}

func (s *ReportService) PlayersByStatRange(ctx context.Context, filter report.PlayerStatFilter) ([]report.PlayerRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.PlayersByStatRange")
	defer span.End()

	stmt, err := PlayersByStatRangeQuery(filter)
	if err != nil {
		return nil, err
	}

	out := make([]report.PlayerRow, 0)
	if err := s.run(ctx, &out, stmt); err != nil {
		return nil, fmt.Errorf("select players by stat range: %w", err)
	}
	return out, nil
}

func (s *ReportService) TeamsByColor(ctx context.Context, in TeamsByColorInput) ([]report.TeamName, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.TeamsByColor")
	defer span.End()

	stmt, err := TeamsByColorQuery(in)
	if err != nil {
		return nil, err
	}

	out := make([]report.TeamName, 0)
	if err := s.run(ctx, &out, stmt); err != nil {
		return nil, fmt.Errorf("select teams by color: %w", err)
	}
	return out, nil
}

func (s *ReportService) PlayersByTeam(ctx context.Context, in PlayersByTeamInput) ([]report.PlayerName, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.PlayersByTeam")
	defer span.End()

	stmt, err := PlayersByTeamQuery(in)
	if err != nil {
		return nil, err
	}

	out := make([]report.PlayerName, 0)
	if err := s.run(ctx, &out, stmt); err != nil {
		return nil, fmt.Errorf("select players by team: %w", err)
	}
	return out, nil
}

func (s *ReportService) PlayersByStateAndColor(ctx context.Context, in PlayersByStateAndColorInput) ([]report.PlayerUniform, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.PlayersByStateAndColor")
	defer span.End()

	stmt, err := PlayersByStateAndColorQuery(in)
	if err != nil {
		return nil, err
	}

	out := make([]report.PlayerUniform, 0)
	if err := s.run(ctx, &out, stmt); err != nil {
		return nil, fmt.Errorf("select players by state and color: %w", err)
	}
	return out, nil
}

func (s *ReportService) PlayersByMinWins(ctx context.Context, in PlayersByMinWinsInput) ([]report.PlayerTeamWins, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.PlayersByMinWins")
	defer span.End()

	stmt, err := PlayersByMinWinsQuery(in)
	if err != nil {
		return nil, err
	}

	out := make([]report.PlayerTeamWins, 0)
	if err := s.run(ctx, &out, stmt); err != nil {
		return nil, fmt.Errorf("select players by min wins: %w", err)
	}
	return out, nil
}

func (s *ReportService) run(ctx context.Context, dest any, stmt statement.Statement) error {
	s.logger.DebugContext(ctx, "report query", "sql", qb.Inline(stmt.Query, stmt.Args))
	return s.executor.Select(ctx, dest, stmt.Query, stmt.Args...)
}
