package report

// Range is an optional inclusive [Min, Max] bound.
type Range[T int | float64] struct {
	Enabled bool
	Min     T
	Max     T
}

func IntRange(min, max int) Range[int] {
	return Range[int]{Enabled: true, Min: min, Max: max}
}

func RateRange(min, max float64) Range[float64] {
	return Range[float64]{Enabled: true, Min: min, Max: max}
}

// ColumnRange is one active range check against a player column.
type ColumnRange struct {
	Column string
	Min    any
	Max    any
}

// PlayerStatFilter holds the six optional per-game filters. Field order is
// the order predicates are emitted in.
type PlayerStatFilter struct {
	MinutesPerGame  Range[int]
	PointsPerGame   Range[int]
	ReboundsPerGame Range[int]
	AssistsPerGame  Range[int]
	StealsPerGame   Range[float64]
	BlocksPerGame   Range[float64]
}

const (
	ColumnMPG = "mpg"
	ColumnPPG = "ppg"
	ColumnRPG = "rpg"
	ColumnAPG = "apg"
	ColumnSPG = "spg"
	ColumnBPG = "bpg"
)

// StatColumns lists the filterable columns in emission order.
var StatColumns = []string{ColumnMPG, ColumnPPG, ColumnRPG, ColumnAPG, ColumnSPG, ColumnBPG}

// Active returns the enabled ranges in fixed column order.
func (f PlayerStatFilter) Active() []ColumnRange {
	out := make([]ColumnRange, 0, len(StatColumns))
	out = appendRange(out, ColumnMPG, f.MinutesPerGame)
	out = appendRange(out, ColumnPPG, f.PointsPerGame)
	out = appendRange(out, ColumnRPG, f.ReboundsPerGame)
	out = appendRange(out, ColumnAPG, f.AssistsPerGame)
	out = appendRange(out, ColumnSPG, f.StealsPerGame)
	out = appendRange(out, ColumnBPG, f.BlocksPerGame)
	return out
}

func appendRange[T int | float64](out []ColumnRange, column string, r Range[T]) []ColumnRange {
	if !r.Enabled {
		return out
	}
	return append(out, ColumnRange{Column: column, Min: r.Min, Max: r.Max})
}
