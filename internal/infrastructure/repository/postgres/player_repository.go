package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kterra/match-ingest/internal/domain/player"
	qb "github.com/kterra/match-ingest/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db Executor
}

func NewPlayerRepository(db Executor) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Upsert(ctx context.Context, p player.Player) error {
	insertModel := playerTableModel{
		PlayerID:   p.ID,
		PlayerName: p.Name,
		Position:   p.Position,
	}
	query, args, err := qb.InsertModel("player", insertModel, `ON CONFLICT (player_id)
DO UPDATE SET
    player_name = EXCLUDED.player_name,
    position = EXCLUDED.position`)
	if err != nil {
		return fmt.Errorf("build upsert player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("player").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	return player.Player{ID: row.PlayerID, Name: row.PlayerName, Position: row.Position}, true, nil
}
