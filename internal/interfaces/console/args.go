package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/acc-bball/internal/domain/report"
)

// Request selects one of the five reports together with its inputs.
type Request struct {
	Query   int
	Filter  report.PlayerStatFilter
	Color   string
	Team    string
	State   string
	MinWins int
}

// ParseRequest reads report inputs from command arguments. Query 1 takes
// zero or more stat=min:max ranges, e.g. mpg=35:40 spg=0.5:1.7.
func ParseRequest(query int, args []string) (Request, error) {
	req := Request{Query: query}
	switch query {
	case 1:
		for _, arg := range args {
			if err := applyRange(&req.Filter, arg); err != nil {
				return Request{}, err
			}
		}
	case 2:
		if err := wantArgs(query, args, "<color>"); err != nil {
			return Request{}, err
		}
		req.Color = args[0]
	case 3:
		if err := wantArgs(query, args, "<team>"); err != nil {
			return Request{}, err
		}
		req.Team = args[0]
	case 4:
		if err := wantArgs(query, args, "<state>", "<color>"); err != nil {
			return Request{}, err
		}
		req.State, req.Color = args[0], args[1]
	case 5:
		if err := wantArgs(query, args, "<wins>"); err != nil {
			return Request{}, err
		}
		wins, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return Request{}, fmt.Errorf("invalid wins %q: %w", args[0], err)
		}
		req.MinWins = wins
	default:
		return Request{}, fmt.Errorf("unknown query %d", query)
	}
	return req, nil
}

// ExerciseRequests are the five reference reports run by the exercise command.
func ExerciseRequests() []Request {
	return []Request{
		{Query: 1, Filter: report.PlayerStatFilter{MinutesPerGame: report.IntRange(35, 40)}},
		{Query: 2, Color: "Orange"},
		{Query: 3, Team: "Duke"},
		{Query: 4, State: "NC", Color: "DarkBlue"},
		{Query: 5, MinWins: 6},
	}
}

func wantArgs(query int, args []string, names ...string) error {
	if len(args) != len(names) {
		return fmt.Errorf("query%d expects %s", query, strings.Join(names, " "))
	}
	return nil
}

func applyRange(filter *report.PlayerStatFilter, arg string) error {
	column, bounds, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("invalid range %q, want stat=min:max", arg)
	}
	minRaw, maxRaw, ok := strings.Cut(bounds, ":")
	if !ok {
		return fmt.Errorf("invalid range %q, want stat=min:max", arg)
	}

	column = strings.ToLower(strings.TrimSpace(column))
	switch column {
	case report.ColumnSPG, report.ColumnBPG:
		min, err := strconv.ParseFloat(strings.TrimSpace(minRaw), 64)
		if err != nil {
			return fmt.Errorf("invalid %s min %q: %w", column, minRaw, err)
		}
		max, err := strconv.ParseFloat(strings.TrimSpace(maxRaw), 64)
		if err != nil {
			return fmt.Errorf("invalid %s max %q: %w", column, maxRaw, err)
		}
		if column == report.ColumnSPG {
			filter.StealsPerGame = report.RateRange(min, max)
		} else {
			filter.BlocksPerGame = report.RateRange(min, max)
		}
		return nil
	}

	min, err := strconv.Atoi(strings.TrimSpace(minRaw))
	if err != nil {
		return fmt.Errorf("invalid %s min %q: %w", column, minRaw, err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(maxRaw))
	if err != nil {
		return fmt.Errorf("invalid %s max %q: %w", column, maxRaw, err)
	}
	r := report.IntRange(min, max)
	switch column {
	case report.ColumnMPG:
		filter.MinutesPerGame = r
	case report.ColumnPPG:
		filter.PointsPerGame = r
	case report.ColumnRPG:
		filter.ReboundsPerGame = r
	case report.ColumnAPG:
		filter.AssistsPerGame = r
	default:
		return fmt.Errorf("unknown stat %q", column)
	}
	return nil
}
