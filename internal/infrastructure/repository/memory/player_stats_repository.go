package memory

import (
	"context"
	"sync"

	"github.com/kterra/match-ingest/internal/domain/playerstats"
)

type playerStatsKey struct {
	gameID   string
	playerID string
}

type PlayerStatsRepository struct {
	mu    sync.RWMutex
	lines map[playerStatsKey]playerstats.Line
}

func NewPlayerStatsRepository() *PlayerStatsRepository {
	return &PlayerStatsRepository{lines: make(map[playerStatsKey]playerstats.Line)}
}

func (r *PlayerStatsRepository) Upsert(_ context.Context, line playerstats.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines[playerStatsKey{line.GameID, line.PlayerID}] = line
	return nil
}

func (r *PlayerStatsRepository) GetByKey(_ context.Context, gameID, playerID string) (playerstats.Line, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	line, ok := r.lines[playerStatsKey{gameID, playerID}]
	return line, ok, nil
}

func (r *PlayerStatsRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.lines)
}
