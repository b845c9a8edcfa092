package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kterra/match-ingest/internal/domain/champion"
	qb "github.com/kterra/match-ingest/internal/platform/querybuilder"
)

type ChampionRepository struct {
	db Executor
}

func NewChampionRepository(db Executor) *ChampionRepository {
	return &ChampionRepository{db: db}
}

func (r *ChampionRepository) Upsert(ctx context.Context, c champion.Champion) error {
	insertModel := championTableModel{ChampionID: c.ID, ChampionName: c.Name}
	query, args, err := qb.InsertModel("champion", insertModel,
		`ON CONFLICT (champion_id) DO UPDATE SET champion_name = EXCLUDED.champion_name`)
	if err != nil {
		return fmt.Errorf("build upsert champion query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert champion: %w", err)
	}
	return nil
}

func (r *ChampionRepository) GetByID(ctx context.Context, championID string) (champion.Champion, bool, error) {
	query, args, err := qb.Select("*").From("champion").
		Where(qb.Eq("champion_id", championID)).
		ToSQL()
	if err != nil {
		return champion.Champion{}, false, fmt.Errorf("build get champion query: %w", err)
	}

	var row championTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return champion.Champion{}, false, nil
		}
		return champion.Champion{}, false, fmt.Errorf("get champion: %w", err)
	}
	return champion.Champion{ID: row.ChampionID, Name: row.ChampionName}, true, nil
}
