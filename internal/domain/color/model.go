package color

import "fmt"

// Color is a team uniform color.
type Color struct {
	ID   int64
	Name string `validate:"required,max=20"`
}

func (c Color) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("color id must be > 0")
	}
	return nil
}
