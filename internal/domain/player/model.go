package player

import "fmt"

// Player is a competitor. Position is whatever the most recent ingested
// appearance reported; it is mutable across games.
type Player struct {
	ID       string
	Name     string
	Position string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	return nil
}
