package console

import (
	"testing"

	"github.com/riskibarqy/acc-bball/internal/domain/report"
	"github.com/stretchr/testify/require"
)

func TestParseRequest_Query1Ranges(t *testing.T) {
	req, err := ParseRequest(1, []string{"mpg=35:40", "SPG=0.5:1.7"})
	require.NoError(t, err)
	require.Equal(t, report.PlayerStatFilter{
		MinutesPerGame: report.IntRange(35, 40),
		StealsPerGame:  report.RateRange(0.5, 1.7),
	}, req.Filter)
}

func TestParseRequest_Query1NoArgsSelectsAll(t *testing.T) {
	req, err := ParseRequest(1, nil)
	require.NoError(t, err)
	require.Empty(t, req.Filter.Active())
}

func TestParseRequest_Errors(t *testing.T) {
	cases := map[string]struct {
		query int
		args  []string
	}{
		"unknown stat":      {1, []string{"fouls=1:2"}},
		"missing bounds":    {1, []string{"mpg=35"}},
		"missing equals":    {1, []string{"mpg"}},
		"bad int bound":     {1, []string{"ppg=ten:20"}},
		"bad rate bound":    {1, []string{"bpg=0.1:lots"}},
		"query2 no color":   {2, nil},
		"query4 one arg":    {4, []string{"NC"}},
		"query5 not number": {5, []string{"six"}},
		"unknown query":     {6, nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseRequest(tc.query, tc.args); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestParseRequest_Positional(t *testing.T) {
	req, err := ParseRequest(4, []string{"NC", "DarkBlue"})
	require.NoError(t, err)
	require.Equal(t, Request{Query: 4, State: "NC", Color: "DarkBlue"}, req)

	req, err = ParseRequest(5, []string{"6"})
	require.NoError(t, err)
	require.Equal(t, 6, req.MinWins)
}
