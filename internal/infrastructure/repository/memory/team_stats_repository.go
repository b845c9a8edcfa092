package memory

import (
	"context"
	"sync"

	"github.com/kterra/match-ingest/internal/domain/teamstats"
)

type teamStatsKey struct {
	gameID string
	teamID string
}

type TeamStatsRepository struct {
	mu    sync.RWMutex
	lines map[teamStatsKey]teamstats.Line
}

func NewTeamStatsRepository() *TeamStatsRepository {
	return &TeamStatsRepository{lines: make(map[teamStatsKey]teamstats.Line)}
}

func (r *TeamStatsRepository) Upsert(_ context.Context, line teamstats.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines[teamStatsKey{line.GameID, line.TeamID}] = line
	return nil
}

func (r *TeamStatsRepository) GetByKey(_ context.Context, gameID, teamID string) (teamstats.Line, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	line, ok := r.lines[teamStatsKey{gameID, teamID}]
	return line, ok, nil
}

func (r *TeamStatsRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.lines)
}
