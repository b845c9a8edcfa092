package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kterra/match-ingest/internal/domain/game"
	qb "github.com/kterra/match-ingest/internal/platform/querybuilder"
)

type GameRepository struct {
	db Executor
}

func NewGameRepository(db Executor) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) Upsert(ctx context.Context, g game.Game) error {
	insertModel := gameTableModel{
		GameID:   g.ID,
		GameDate: nullTime(g.Date),
		League:   g.League,
		Patch:    g.Patch,
	}
	query, args, err := qb.InsertModel("game", insertModel, `ON CONFLICT (game_id)
DO UPDATE SET
    game_date = EXCLUDED.game_date,
    league = EXCLUDED.league,
    patch = EXCLUDED.patch`)
	if err != nil {
		return fmt.Errorf("build upsert game query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert game: %w", err)
	}
	return nil
}

func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	query, args, err := qb.Select("*").From("game").
		Where(qb.Eq("game_id", gameID)).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build get game query: %w", err)
	}

	var row gameTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game: %w", err)
	}

	return game.Game{
		ID:     row.GameID,
		Date:   timePtr(row.GameDate),
		League: row.League,
		Patch:  row.Patch,
	}, true, nil
}
