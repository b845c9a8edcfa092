package teamstats

import "fmt"

// Line is one team's aggregate performance in one game, keyed
// (GameID, TeamID).
type Line struct {
	GameID       string
	TeamID       string
	TotalKills   int
	TotalDeaths  int
	TotalAssists int
}

func (l Line) Validate() error {
	if l.GameID == "" {
		return fmt.Errorf("team stats game id is required")
	}
	if l.TeamID == "" {
		return fmt.Errorf("team stats team id is required")
	}
	return nil
}
