package player

import "fmt"

// Player carries per-game averages. Counting stats are whole numbers; steals
// and blocks are one-decimal rates.
type Player struct {
	ID              int64
	TeamID          int64
	UniformNum      int
	FirstName       string `validate:"required,max=20"`
	LastName        string `validate:"required,max=20"`
	MinutesPerGame  int
	PointsPerGame   int
	ReboundsPerGame int
	AssistsPerGame  int
	StealsPerGame   float64
	BlocksPerGame   float64
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be > 0")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player %s %s team reference must be > 0", p.FirstName, p.LastName)
	}
	return nil
}
