package game

import (
	"fmt"
	"time"
)

// Game is a single competitive match. Date is nil when the source export
// carried no parseable date.
type Game struct {
	ID     string
	Date   *time.Time
	League string
	Patch  string
}

func (g Game) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("game id is required")
	}
	return nil
}
