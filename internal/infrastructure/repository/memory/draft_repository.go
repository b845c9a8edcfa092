package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kterra/match-ingest/internal/domain/draft"
)

type ordinalKey struct {
	gameID string
	teamID string
	order  int
}

type DraftRepository struct {
	mu    sync.RWMutex
	bans  map[ordinalKey]draft.Ban
	picks map[ordinalKey]draft.Pick
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{
		bans:  make(map[ordinalKey]draft.Ban),
		picks: make(map[ordinalKey]draft.Pick),
	}
}

func (r *DraftRepository) InsertBan(_ context.Context, b draft.Ban) error {
	if err := b.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bans[ordinalKey{b.GameID, b.TeamID, b.Order}] = b
	return nil
}

func (r *DraftRepository) InsertPick(_ context.Context, p draft.Pick) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.picks[ordinalKey{p.GameID, p.TeamID, p.Order}] = p
	return nil
}

func (r *DraftRepository) ListBans(_ context.Context, gameID, teamID string) ([]draft.Ban, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]draft.Ban, 0, draft.MaxOrdinal)
	for k, b := range r.bans {
		if k.gameID == gameID && k.teamID == teamID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *DraftRepository) ListPicks(_ context.Context, gameID, teamID string) ([]draft.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]draft.Pick, 0, draft.MaxOrdinal)
	for k, p := range r.picks {
		if k.gameID == gameID && k.teamID == teamID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}
