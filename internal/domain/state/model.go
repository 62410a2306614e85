package state

import "fmt"

// State is a two-letter US state code a team plays in.
type State struct {
	ID   int64
	Name string `validate:"len=2"`
}

func (s State) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("state id must be > 0")
	}
	return nil
}
