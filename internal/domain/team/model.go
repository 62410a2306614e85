package team

import "fmt"

// Team is a college basketball team. StateID and ColorID reference the
// insertion ordinal of the parent rows.
type Team struct {
	ID      int64
	Name    string `validate:"required,max=25"`
	StateID int64
	ColorID int64
	Wins    int
	Losses  int
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be > 0")
	}
	if t.StateID <= 0 || t.ColorID <= 0 {
		return fmt.Errorf("team %s state and color references must be > 0", t.Name)
	}
	if t.Wins < 0 || t.Losses < 0 {
		return fmt.Errorf("team %s wins and losses must be >= 0", t.Name)
	}

	return nil
}
