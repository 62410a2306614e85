package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/acc-bball/internal/domain/color"
	"github.com/riskibarqy/acc-bball/internal/domain/player"
	"github.com/riskibarqy/acc-bball/internal/domain/state"
	"github.com/riskibarqy/acc-bball/internal/domain/team"
	colormock "github.com/riskibarqy/acc-bball/internal/mocks/domain/color"
	playermock "github.com/riskibarqy/acc-bball/internal/mocks/domain/player"
	statemock "github.com/riskibarqy/acc-bball/internal/mocks/domain/state"
	teammock "github.com/riskibarqy/acc-bball/internal/mocks/domain/team"
	"github.com/riskibarqy/acc-bball/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

type staticDatasetSource struct {
	data Dataset
	err  error
}

func (s staticDatasetSource) ReadDataset(context.Context) (Dataset, error) {
	return s.data, s.err
}

type loadMocks struct {
	states  *statemock.Repository
	colors  *colormock.Repository
	teams   *teammock.Repository
	players *playermock.Repository
}

func newLoadMocks(t *testing.T) loadMocks {
	return loadMocks{
		states:  statemock.NewRepository(t),
		colors:  colormock.NewRepository(t),
		teams:   teammock.NewRepository(t),
		players: playermock.NewRepository(t),
	}
}

func (m loadMocks) repos() LoadRepositories {
	return LoadRepositories{States: m.states, Colors: m.colors, Teams: m.teams, Players: m.players}
}

func dukeDataset() Dataset {
	return Dataset{
		States: []state.State{{ID: 1, Name: "NC"}},
		Colors: []color.Color{{ID: 1, Name: "DarkBlue"}},
		Teams:  []team.Team{{ID: 1, Name: "Duke", StateID: 1, ColorID: 1, Wins: 30, Losses: 5}},
		Players: []player.Player{{
			ID: 1, TeamID: 1, UniformNum: 4, FirstName: "Jerome", LastName: "Robinson",
			MinutesPerGame: 34, PointsPerGame: 19, ReboundsPerGame: 4, AssistsPerGame: 3,
			StealsPerGame: 1.7, BlocksPerGame: 0.4,
		}},
	}
}

func TestLoadService_LoadFromSource_InsertsInDependencyOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newLoadMocks(t)
	service := NewLoadService(staticDatasetSource{data: dukeDataset()}, m.repos(), true, logging.NewNop())

	var order []string
	m.states.On("Insert", ctx, state.State{ID: 1, Name: "NC"}).
		Run(func(mock.Arguments) { order = append(order, "state") }).Return(nil).Once()
	m.colors.On("Insert", ctx, color.Color{ID: 1, Name: "DarkBlue"}).
		Run(func(mock.Arguments) { order = append(order, "color") }).Return(nil).Once()
	m.teams.On("Insert", ctx, team.Team{ID: 1, Name: "Duke", StateID: 1, ColorID: 1, Wins: 30, Losses: 5}).
		Run(func(mock.Arguments) { order = append(order, "team") }).Return(nil).Once()
	m.players.On("Insert", ctx, dukeDataset().Players[0]).
		Run(func(mock.Arguments) { order = append(order, "player") }).Return(nil).Once()

	result, err := service.LoadFromSource(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if result != (LoadResult{States: 1, Colors: 1, Teams: 1, Players: 1}) {
		t.Fatalf("unexpected load result: %+v", result)
	}
	want := []string{"state", "color", "team", "player"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected insert order: %v", order)
		}
	}
}

func TestLoadService_AssignsIDsFromSessionNotFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newLoadMocks(t)
	service := NewLoadService(nil, m.repos(), false, logging.NewNop())

	data := Dataset{
		States: []state.State{{ID: 10, Name: "NC"}, {ID: 99, Name: "VA"}},
		Teams:  []team.Team{{ID: 7, Name: "Virginia", StateID: 2, ColorID: 1, Wins: 3, Losses: 1}},
	}

	m.states.On("Insert", ctx, state.State{ID: 1, Name: "NC"}).Return(nil).Once()
	m.states.On("Insert", ctx, state.State{ID: 2, Name: "VA"}).Return(nil).Once()
	m.teams.On("Insert", ctx, team.Team{ID: 1, Name: "Virginia", StateID: 2, ColorID: 1, Wins: 3, Losses: 1}).Return(nil).Once()

	if _, err := service.Load(ctx, NewLoadSession(), data); err != nil {
		t.Fatalf("load: %v", err)
	}
}

func TestLoadService_FreshSessionRestartsCounters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newLoadMocks(t)
	service := NewLoadService(nil, m.repos(), false, logging.NewNop())

	data := Dataset{Colors: []color.Color{{ID: 1, Name: "Orange"}}}
	m.colors.On("Insert", ctx, color.Color{ID: 1, Name: "Orange"}).Return(nil).Twice()

	for i := 0; i < 2; i++ {
		if _, err := service.Load(ctx, NewLoadSession(), data); err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
	}
}

func TestLoadService_SharedSessionContinuesCounters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newLoadMocks(t)
	service := NewLoadService(nil, m.repos(), false, logging.NewNop())

	session := NewLoadSession()
	data := Dataset{Colors: []color.Color{{ID: 1, Name: "Orange"}}}
	m.colors.On("Insert", ctx, color.Color{ID: 1, Name: "Orange"}).Return(nil).Once()
	m.colors.On("Insert", ctx, color.Color{ID: 2, Name: "Orange"}).Return(nil).Once()

	for i := 0; i < 2; i++ {
		if _, err := service.Load(ctx, session, data); err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
	}
}

func TestLoadService_StopsAtFirstInsertFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newLoadMocks(t)
	service := NewLoadService(nil, m.repos(), false, logging.NewNop())

	data := dukeDataset()
	data.Teams = append(data.Teams, team.Team{ID: 2, Name: "Ghost", StateID: 9, ColorID: 1})

	m.states.On("Insert", ctx, mock.Anything).Return(nil).Once()
	m.colors.On("Insert", ctx, mock.Anything).Return(nil).Once()
	m.teams.On("Insert", ctx, mock.MatchedBy(func(row team.Team) bool { return row.ID == 1 })).Return(nil).Once()
	m.teams.On("Insert", ctx, mock.MatchedBy(func(row team.Team) bool { return row.ID == 2 })).
		Return(errors.New("violates foreign key constraint stateidfk")).Once()

	result, err := service.Load(ctx, NewLoadSession(), data)
	if err == nil {
		t.Fatalf("expected insert failure")
	}
	if result.Teams != 1 || result.Players != 0 {
		t.Fatalf("unexpected partial result: %+v", result)
	}
}

func TestLoadService_VerifyIDsRejectsMismatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newLoadMocks(t)
	service := NewLoadService(nil, m.repos(), true, logging.NewNop())

	data := Dataset{States: []state.State{{ID: 2, Name: "NC"}}}

	_, err := service.Load(ctx, NewLoadSession(), data)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLoadService_VerifyIDsRejectsOversizedName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newLoadMocks(t)
	service := NewLoadService(nil, m.repos(), true, logging.NewNop())

	data := Dataset{
		States: []state.State{{ID: 1, Name: "NC"}},
		Colors: []color.Color{{ID: 1, Name: "DarkBlue"}},
		Teams:  []team.Team{{ID: 1, Name: "NorthCarolinaCentralEagles", StateID: 1, ColorID: 1}},
	}
	m.states.On("Insert", ctx, mock.Anything).Return(nil).Once()
	m.colors.On("Insert", ctx, mock.Anything).Return(nil).Once()

	result, err := service.Load(ctx, NewLoadSession(), data)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if result.Teams != 0 {
		t.Fatalf("expected no team insert, got %+v", result)
	}
}

func TestLoadService_VerifyIDsRejectsLongStateCode(t *testing.T) {
	t.Parallel()

	m := newLoadMocks(t)
	service := NewLoadService(nil, m.repos(), true, logging.NewNop())

	data := Dataset{States: []state.State{{ID: 1, Name: "NCA"}}}
	if _, err := service.Load(context.Background(), NewLoadSession(), data); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLoadService_VerifyIDsRejectsDanglingReference(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newLoadMocks(t)
	service := NewLoadService(nil, m.repos(), true, logging.NewNop())

	data := Dataset{
		States: []state.State{{ID: 1, Name: "NC"}},
		Colors: []color.Color{{ID: 1, Name: "DarkBlue"}},
		Teams:  []team.Team{{ID: 1, Name: "Duke", StateID: 2, ColorID: 1}},
	}
	m.states.On("Insert", ctx, mock.Anything).Return(nil).Once()
	m.colors.On("Insert", ctx, mock.Anything).Return(nil).Once()

	_, err := service.Load(ctx, NewLoadSession(), data)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLoadService_SourceFailure(t *testing.T) {
	t.Parallel()

	m := newLoadMocks(t)
	service := NewLoadService(staticDatasetSource{err: errors.New("permission denied")}, m.repos(), false, logging.NewNop())

	if _, err := service.LoadFromSource(context.Background()); err == nil {
		t.Fatalf("expected source failure")
	}
}
