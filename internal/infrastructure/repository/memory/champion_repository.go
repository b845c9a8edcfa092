package memory

import (
	"context"
	"sync"

	"github.com/kterra/match-ingest/internal/domain/champion"
)

type ChampionRepository struct {
	mu        sync.RWMutex
	champions map[string]champion.Champion
}

func NewChampionRepository() *ChampionRepository {
	return &ChampionRepository{champions: make(map[string]champion.Champion)}
}

func (r *ChampionRepository) Upsert(_ context.Context, c champion.Champion) error {
	if err := c.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.champions[c.ID] = c
	return nil
}

func (r *ChampionRepository) GetByID(_ context.Context, championID string) (champion.Champion, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.champions[championID]
	return c, ok, nil
}

func (r *ChampionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.champions)
}
