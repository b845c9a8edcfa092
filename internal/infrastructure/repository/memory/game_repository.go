// Package memory provides in-memory repository implementations with the same
// key and ordinal semantics as the Postgres package. They back the loader
// tests and local development without a database.
package memory

import (
	"context"
	"sync"

	"github.com/kterra/match-ingest/internal/domain/game"
)

type GameRepository struct {
	mu    sync.RWMutex
	games map[string]game.Game
}

func NewGameRepository() *GameRepository {
	return &GameRepository{games: make(map[string]game.Game)}
}

func (r *GameRepository) Upsert(_ context.Context, g game.Game) error {
	if err := g.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[g.ID] = g
	return nil
}

func (r *GameRepository) GetByID(_ context.Context, gameID string) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[gameID]
	return g, ok, nil
}

// Len reports the number of stored games; test helper.
func (r *GameRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
