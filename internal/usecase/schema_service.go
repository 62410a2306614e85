package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/acc-bball/internal/domain/schema"
	"github.com/riskibarqy/acc-bball/internal/domain/statement"
	"github.com/riskibarqy/acc-bball/internal/platform/logging"
)

type SchemaService struct {
	repo   schema.Repository
	logger *logging.Logger
}

func NewSchemaService(repo schema.Repository, logger *logging.Logger) *SchemaService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SchemaService{repo: repo, logger: logger}
}

// DropTables drops every roster table. Tables that do not exist are logged
// and skipped; any other failure stops the sequence.
func (s *SchemaService) DropTables(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SchemaService.DropTables")
	defer span.End()

	for _, table := range schema.DropOrder {
		err := s.repo.DropTable(ctx, table)
		switch {
		case err == nil:
			s.logger.InfoContext(ctx, "table dropped", "table", table)
		case statement.IsMissingObject(err):
			s.logger.InfoContext(ctx, "table does not exist, ignoring the drop", "table", table)
		default:
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	return nil
}

func (s *SchemaService) CreateTables(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SchemaService.CreateTables")
	defer span.End()

	if err := s.repo.CreateTables(ctx); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	s.logger.InfoContext(ctx, "all tables created")
	return nil
}

// Reset drops and recreates the schema, leaving empty tables.
func (s *SchemaService) Reset(ctx context.Context) error {
	if err := s.DropTables(ctx); err != nil {
		return err
	}
	return s.CreateTables(ctx)
}
