// Package draft holds the ordered pick/ban child rows of a game. Ordinal
// positions are meaningful and bounded; a write outside the cap is an
// expected business-rule rejection, not a storage fault.
package draft

import (
	"errors"
	"fmt"
)

// MaxOrdinal is the fixed number of bans and picks a team gets per game.
const MaxOrdinal = 5

// ErrOrdinalCap reports an attempt to write a ban or pick whose ordinal falls
// outside 1..MaxOrdinal for its (game, team) pair. Loaders swallow it.
var ErrOrdinalCap = errors.New("draft ordinal outside the allowed range")

// Ban is one banned champion, keyed (GameID, TeamID, Order).
type Ban struct {
	GameID     string
	TeamID     string
	Order      int
	ChampionID string
}

func (b Ban) Validate() error {
	if b.GameID == "" || b.TeamID == "" {
		return fmt.Errorf("ban game id and team id are required")
	}
	if b.Order < 1 || b.Order > MaxOrdinal {
		return fmt.Errorf("ban order %d: %w", b.Order, ErrOrdinalCap)
	}
	if b.ChampionID == "" {
		return fmt.Errorf("ban champion id is required")
	}
	return nil
}

// Pick is one drafted champion with the player who played it, keyed
// (GameID, TeamID, Order).
type Pick struct {
	GameID     string
	TeamID     string
	Order      int
	PlayerID   string
	ChampionID string
}

func (p Pick) Validate() error {
	if p.GameID == "" || p.TeamID == "" {
		return fmt.Errorf("pick game id and team id are required")
	}
	if p.Order < 1 || p.Order > MaxOrdinal {
		return fmt.Errorf("pick order %d: %w", p.Order, ErrOrdinalCap)
	}
	if p.PlayerID == "" || p.ChampionID == "" {
		return fmt.Errorf("pick player id and champion id are required")
	}
	return nil
}
