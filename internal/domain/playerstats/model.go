package playerstats

import "fmt"

// Line is one player's performance in one game, keyed (GameID, PlayerID).
// Re-ingesting the same pair overwrites the stat values in place.
type Line struct {
	GameID     string
	PlayerID   string
	TeamID     string
	Position   string
	ChampionID string
	Kills      int
	Deaths     int
	Assists    int
	GoldEarned int
	CreepScore int
}

func (l Line) Validate() error {
	if l.GameID == "" {
		return fmt.Errorf("player stats game id is required")
	}
	if l.PlayerID == "" {
		return fmt.Errorf("player stats player id is required")
	}
	return nil
}
