package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/riskibarqy/acc-bball/internal/domain/color"
	"github.com/riskibarqy/acc-bball/internal/domain/player"
	"github.com/riskibarqy/acc-bball/internal/domain/state"
	"github.com/riskibarqy/acc-bball/internal/domain/team"
	"github.com/riskibarqy/acc-bball/internal/platform/logging"
	"github.com/riskibarqy/acc-bball/internal/usecase"
	"github.com/sourcegraph/conc/pool"
)

type Paths struct {
	State  string
	Color  string
	Team   string
	Player string
}

// Source reads the dataset from whitespace-delimited text files, one record
// per line. Reading a file stops at its first malformed line.
type Source struct {
	paths  Paths
	logger *logging.Logger
}

var _ usecase.DatasetSource = (*Source)(nil)

func NewSource(paths Paths, logger *logging.Logger) *Source {
	if logger == nil {
		logger = logging.Default()
	}
	return &Source{paths: paths, logger: logger}
}

func (s *Source) ReadDataset(ctx context.Context) (usecase.Dataset, error) {
	var data usecase.Dataset

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		rows, err := readFile(ctx, s, s.paths.State, parseState)
		data.States = rows
		return err
	})
	p.Go(func(ctx context.Context) error {
		rows, err := readFile(ctx, s, s.paths.Color, parseColor)
		data.Colors = rows
		return err
	})
	p.Go(func(ctx context.Context) error {
		rows, err := readFile(ctx, s, s.paths.Team, parseTeam)
		data.Teams = rows
		return err
	})
	p.Go(func(ctx context.Context) error {
		rows, err := readFile(ctx, s, s.paths.Player, parsePlayer)
		data.Players = rows
		return err
	})
	if err := p.Wait(); err != nil {
		return usecase.Dataset{}, err
	}
	return data, nil
}

func readFile[T any](ctx context.Context, s *Source, path string, parse func([]string) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.WarnContext(ctx, "input file not found, loading no rows", "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, line, err := decode(f, parse)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if line > 0 {
		s.logger.DebugContext(ctx, "stopped at malformed line", "path", path, "line", line, "rows", len(rows))
	}
	return rows, nil
}

// decode parses records until EOF or the first malformed line. A blank line
// is malformed. It returns the 1-based number of the malformed line, or 0
// when every line parsed.
func decode[T any](r io.Reader, parse func([]string) (T, error)) ([]T, int, error) {
	var rows []T
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row, err := parse(strings.Fields(scanner.Text()))
		if err != nil {
			return rows, line, nil
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return rows, 0, nil
}

var errShortRecord = errors.New("short record")

// fieldReader converts positional fields and keeps the first failure.
type fieldReader struct {
	fields []string
	err    error
}

func newFieldReader(fields []string, want int) *fieldReader {
	r := &fieldReader{fields: fields}
	if len(fields) < want {
		r.err = errShortRecord
	}
	return r
}

func (r *fieldReader) text(i int) string {
	if r.err != nil {
		return ""
	}
	return r.fields[i]
}

func (r *fieldReader) int64(i int) int64 {
	if r.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(r.fields[i], 10, 64)
	if err != nil {
		r.err = err
	}
	return v
}

func (r *fieldReader) int(i int) int {
	return int(r.int64(i))
}

func (r *fieldReader) float(i int) float64 {
	if r.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(r.fields[i], 64)
	if err != nil {
		r.err = err
	}
	return v
}

func parseState(fields []string) (state.State, error) {
	r := newFieldReader(fields, 2)
	row := state.State{ID: r.int64(0), Name: r.text(1)}
	return row, r.err
}

func parseColor(fields []string) (color.Color, error) {
	r := newFieldReader(fields, 2)
	row := color.Color{ID: r.int64(0), Name: r.text(1)}
	return row, r.err
}

func parseTeam(fields []string) (team.Team, error) {
	r := newFieldReader(fields, 6)
	row := team.Team{
		ID:      r.int64(0),
		Name:    r.text(1),
		StateID: r.int64(2),
		ColorID: r.int64(3),
		Wins:    r.int(4),
		Losses:  r.int(5),
	}
	return row, r.err
}

func parsePlayer(fields []string) (player.Player, error) {
	r := newFieldReader(fields, 11)
	row := player.Player{
		ID:              r.int64(0),
		TeamID:          r.int64(1),
		UniformNum:      r.int(2),
		FirstName:       r.text(3),
		LastName:        r.text(4),
		MinutesPerGame:  r.int(5),
		PointsPerGame:   r.int(6),
		ReboundsPerGame: r.int(7),
		AssistsPerGame:  r.int(8),
		StealsPerGame:   r.float(9),
		BlocksPerGame:   r.float(10),
	}
	return row, r.err
}
