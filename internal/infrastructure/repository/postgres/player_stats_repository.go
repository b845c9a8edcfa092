package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kterra/match-ingest/internal/domain/playerstats"
	qb "github.com/kterra/match-ingest/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db Executor
}

func NewPlayerStatsRepository(db Executor) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) Upsert(ctx context.Context, line playerstats.Line) error {
	insertModel := playerStatsTableModel{
		GameID:     line.GameID,
		PlayerID:   line.PlayerID,
		TeamID:     line.TeamID,
		Position:   line.Position,
		ChampionID: line.ChampionID,
		Kills:      line.Kills,
		Deaths:     line.Deaths,
		Assists:    line.Assists,
		GoldEarned: line.GoldEarned,
		CreepScore: line.CreepScore,
	}
	query, args, err := qb.InsertModel("player_stats", insertModel, `ON CONFLICT (game_id, player_id)
DO UPDATE SET
    team_id = EXCLUDED.team_id,
    position = EXCLUDED.position,
    champion_id = EXCLUDED.champion_id,
    kills = EXCLUDED.kills,
    deaths = EXCLUDED.deaths,
    assists = EXCLUDED.assists,
    gold_earned = EXCLUDED.gold_earned,
    cs = EXCLUDED.cs`)
	if err != nil {
		return fmt.Errorf("build upsert player stats query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player stats: %w", err)
	}
	return nil
}

func (r *PlayerStatsRepository) GetByKey(ctx context.Context, gameID, playerID string) (playerstats.Line, bool, error) {
	query, args, err := qb.Select("*").From("player_stats").
		Where(qb.Eq("game_id", gameID), qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return playerstats.Line{}, false, fmt.Errorf("build get player stats query: %w", err)
	}

	var row playerStatsTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerstats.Line{}, false, nil
		}
		return playerstats.Line{}, false, fmt.Errorf("get player stats: %w", err)
	}
	return playerstats.Line{
		GameID:     row.GameID,
		PlayerID:   row.PlayerID,
		TeamID:     row.TeamID,
		Position:   row.Position,
		ChampionID: row.ChampionID,
		Kills:      row.Kills,
		Deaths:     row.Deaths,
		Assists:    row.Assists,
		GoldEarned: row.GoldEarned,
		CreepScore: row.CreepScore,
	}, true, nil
}
