package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kterra/match-ingest/internal/domain/team"
	qb "github.com/kterra/match-ingest/internal/platform/querybuilder"
)

type TeamRepository struct {
	db Executor
}

func NewTeamRepository(db Executor) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Upsert(ctx context.Context, t team.Team) error {
	insertModel := teamTableModel{TeamID: t.ID, TeamName: t.Name}
	query, args, err := qb.InsertModel("team", insertModel,
		`ON CONFLICT (team_id) DO UPDATE SET team_name = EXCLUDED.team_name`)
	if err != nil {
		return fmt.Errorf("build upsert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team: %w", err)
	}
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("team").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}
	return team.Team{ID: row.TeamID, Name: row.TeamName}, true, nil
}
