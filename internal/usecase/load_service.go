package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/acc-bball/internal/domain/color"
	"github.com/riskibarqy/acc-bball/internal/domain/player"
	"github.com/riskibarqy/acc-bball/internal/domain/state"
	"github.com/riskibarqy/acc-bball/internal/domain/team"
	"github.com/riskibarqy/acc-bball/internal/platform/id"
	"github.com/riskibarqy/acc-bball/internal/platform/logging"
)

// Dataset is the parsed content of the four input files. IDs carry the id
// column as written in the file; team and player references are insertion
// ordinals.
type Dataset struct {
	States  []state.State
	Colors  []color.Color
	Teams   []team.Team
	Players []player.Player
}

// DatasetSource supplies the rows to bulk load.
type DatasetSource interface {
	ReadDataset(ctx context.Context) (Dataset, error)
}

type LoadResult struct {
	States  int
	Colors  int
	Teams   int
	Players int
}

// LoadSession owns the per-entity id counters of one bulk load.
type LoadSession struct {
	states  *id.Sequence
	colors  *id.Sequence
	teams   *id.Sequence
	players *id.Sequence
}

func NewLoadSession() *LoadSession {
	return &LoadSession{
		states:  id.NewSequence(),
		colors:  id.NewSequence(),
		teams:   id.NewSequence(),
		players: id.NewSequence(),
	}
}

type LoadRepositories struct {
	States  state.Repository
	Colors  color.Repository
	Teams   team.Repository
	Players player.Repository
}

type LoadService struct {
	source    DatasetSource
	repos     LoadRepositories
	verifyIDs bool
	validator *validator.Validate
	logger    *logging.Logger
}

// NewLoadService builds the bulk loader. With verifyIDs set, a row is rejected
// with ErrInvalidInput when its file id differs from its insertion ordinal,
// when its references point past the parents inserted so far, or when a name
// does not fit its column.
func NewLoadService(source DatasetSource, repos LoadRepositories, verifyIDs bool, logger *logging.Logger) *LoadService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LoadService{
		source:    source,
		repos:     repos,
		verifyIDs: verifyIDs,
		validator: validator.New(),
		logger:    logger,
	}
}

// LoadFromSource reads the dataset and loads it in a fresh session.
func (s *LoadService) LoadFromSource(ctx context.Context) (LoadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoadService.LoadFromSource")
	defer span.End()

	data, err := s.source.ReadDataset(ctx)
	if err != nil {
		return LoadResult{}, fmt.Errorf("read dataset: %w", err)
	}
	return s.Load(ctx, NewLoadSession(), data)
}

// Load inserts states, colors, teams and players in that order, one unit of
// work per row. The first failing row aborts the load; rows already
// inserted stay committed.
func (s *LoadService) Load(ctx context.Context, session *LoadSession, data Dataset) (LoadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoadService.Load")
	defer span.End()

	var result LoadResult

	for _, rec := range data.States {
		row := state.State{ID: session.states.NextID(), Name: rec.Name}
		if err := s.checkRow(ctx, "state", rec.ID, row.ID, row); err != nil {
			return result, err
		}
		if err := s.repos.States.Insert(ctx, row); err != nil {
			return result, fmt.Errorf("insert state %d: %w", row.ID, err)
		}
		result.States++
	}
	s.logger.InfoContext(ctx, "filled table", "table", "state", "rows", result.States)

	for _, rec := range data.Colors {
		row := color.Color{ID: session.colors.NextID(), Name: rec.Name}
		if err := s.checkRow(ctx, "color", rec.ID, row.ID, row); err != nil {
			return result, err
		}
		if err := s.repos.Colors.Insert(ctx, row); err != nil {
			return result, fmt.Errorf("insert color %d: %w", row.ID, err)
		}
		result.Colors++
	}
	s.logger.InfoContext(ctx, "filled table", "table", "color", "rows", result.Colors)

	for _, rec := range data.Teams {
		row := rec
		row.ID = session.teams.NextID()
		if err := s.checkRow(ctx, "team", rec.ID, row.ID, row); err != nil {
			return result, err
		}
		if err := s.checkRef("team", row.ID, "state", row.StateID, session.states); err != nil {
			return result, err
		}
		if err := s.checkRef("team", row.ID, "color", row.ColorID, session.colors); err != nil {
			return result, err
		}
		if err := s.repos.Teams.Insert(ctx, row); err != nil {
			return result, fmt.Errorf("insert team %d: %w", row.ID, err)
		}
		result.Teams++
	}
	s.logger.InfoContext(ctx, "filled table", "table", "team", "rows", result.Teams)

	for _, rec := range data.Players {
		row := rec
		row.ID = session.players.NextID()
		if err := s.checkRow(ctx, "player", rec.ID, row.ID, row); err != nil {
			return result, err
		}
		if err := s.checkRef("player", row.ID, "team", row.TeamID, session.teams); err != nil {
			return result, err
		}
		if err := s.repos.Players.Insert(ctx, row); err != nil {
			return result, fmt.Errorf("insert player %d: %w", row.ID, err)
		}
		result.Players++
	}
	s.logger.InfoContext(ctx, "filled table", "table", "player", "rows", result.Players)

	return result, nil
}

type validatable interface {
	Validate() error
}

func (s *LoadService) checkRow(ctx context.Context, kind string, fileID, assignedID int64, row validatable) error {
	if !s.verifyIDs {
		return nil
	}
	if fileID != assignedID {
		return fmt.Errorf("%w: %s file id %d does not match insertion ordinal %d", ErrInvalidInput, kind, fileID, assignedID)
	}
	if err := row.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.validator.StructCtx(ctx, row); err != nil {
		return fmt.Errorf("%w: %s %d: %v", ErrInvalidInput, kind, fileID, err)
	}
	return nil
}

func (s *LoadService) checkRef(kind string, rowID int64, parent string, ref int64, parents *id.Sequence) error {
	if !s.verifyIDs {
		return nil
	}
	if ref < 1 || ref > parents.Last() {
		return fmt.Errorf("%w: %s %d references %s %d, only %d inserted", ErrInvalidInput, kind, rowID, parent, ref, parents.Last())
	}
	return nil
}
