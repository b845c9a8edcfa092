package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kterra/match-ingest/internal/domain/teamstats"
	qb "github.com/kterra/match-ingest/internal/platform/querybuilder"
)

type TeamStatsRepository struct {
	db Executor
}

func NewTeamStatsRepository(db Executor) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

func (r *TeamStatsRepository) Upsert(ctx context.Context, line teamstats.Line) error {
	insertModel := teamStatsTableModel{
		GameID:       line.GameID,
		TeamID:       line.TeamID,
		TotalKills:   line.TotalKills,
		TotalDeaths:  line.TotalDeaths,
		TotalAssists: line.TotalAssists,
	}
	query, args, err := qb.InsertModel("team_stats", insertModel, `ON CONFLICT (game_id, team_id)
DO UPDATE SET
    total_kills = EXCLUDED.total_kills,
    total_deaths = EXCLUDED.total_deaths,
    total_assists = EXCLUDED.total_assists`)
	if err != nil {
		return fmt.Errorf("build upsert team stats query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team stats: %w", err)
	}
	return nil
}

func (r *TeamStatsRepository) GetByKey(ctx context.Context, gameID, teamID string) (teamstats.Line, bool, error) {
	query, args, err := qb.Select("*").From("team_stats").
		Where(qb.Eq("game_id", gameID), qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return teamstats.Line{}, false, fmt.Errorf("build get team stats query: %w", err)
	}

	var row teamStatsTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return teamstats.Line{}, false, nil
		}
		return teamstats.Line{}, false, fmt.Errorf("get team stats: %w", err)
	}
	return teamstats.Line{
		GameID:       row.GameID,
		TeamID:       row.TeamID,
		TotalKills:   row.TotalKills,
		TotalDeaths:  row.TotalDeaths,
		TotalAssists: row.TotalAssists,
	}, true, nil
}
