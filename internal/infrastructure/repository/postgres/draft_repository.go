package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kterra/match-ingest/internal/domain/draft"
	qb "github.com/kterra/match-ingest/internal/platform/querybuilder"
)

type DraftRepository struct {
	db Executor
}

func NewDraftRepository(db Executor) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) InsertBan(ctx context.Context, b draft.Ban) error {
	if err := b.Validate(); err != nil {
		return err
	}
	insertModel := banTableModel{
		GameID:     b.GameID,
		TeamID:     b.TeamID,
		BanOrder:   b.Order,
		ChampionID: b.ChampionID,
	}
	// Conflicting on the full ordinal key keeps retries convergent without
	// ever shifting an already-assigned ordinal.
	query, args, err := qb.InsertModel("ban", insertModel, `ON CONFLICT (game_id, team_id, ban_order)
DO UPDATE SET champion_id = EXCLUDED.champion_id`)
	if err != nil {
		return fmt.Errorf("build insert ban query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("insert ban order %d: %w", b.Order, draft.ErrOrdinalCap)
		}
		return fmt.Errorf("insert ban: %w", err)
	}
	return nil
}

func (r *DraftRepository) InsertPick(ctx context.Context, p draft.Pick) error {
	if err := p.Validate(); err != nil {
		return err
	}
	insertModel := pickTableModel{
		GameID:     p.GameID,
		TeamID:     p.TeamID,
		PickOrder:  p.Order,
		PlayerID:   p.PlayerID,
		ChampionID: p.ChampionID,
	}
	query, args, err := qb.InsertModel("pick", insertModel, `ON CONFLICT (game_id, team_id, pick_order)
DO UPDATE SET
    player_id = EXCLUDED.player_id,
    champion_id = EXCLUDED.champion_id`)
	if err != nil {
		return fmt.Errorf("build insert pick query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("insert pick order %d: %w", p.Order, draft.ErrOrdinalCap)
		}
		return fmt.Errorf("insert pick: %w", err)
	}
	return nil
}

func (r *DraftRepository) ListBans(ctx context.Context, gameID, teamID string) ([]draft.Ban, error) {
	query, args, err := qb.Select("*").From("ban").
		Where(qb.Eq("game_id", gameID), qb.Eq("team_id", teamID)).
		OrderBy("ban_order").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list bans query: %w", err)
	}

	var rows []banTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list bans: %w", err)
	}
	out := make([]draft.Ban, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.Ban{
			GameID:     row.GameID,
			TeamID:     row.TeamID,
			Order:      row.BanOrder,
			ChampionID: row.ChampionID,
		})
	}
	return out, nil
}

func (r *DraftRepository) ListPicks(ctx context.Context, gameID, teamID string) ([]draft.Pick, error) {
	query, args, err := qb.Select("*").From("pick").
		Where(qb.Eq("game_id", gameID), qb.Eq("team_id", teamID)).
		OrderBy("pick_order").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks query: %w", err)
	}

	var rows []pickTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	out := make([]draft.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.Pick{
			GameID:     row.GameID,
			TeamID:     row.TeamID,
			Order:      row.PickOrder,
			PlayerID:   row.PlayerID,
			ChampionID: row.ChampionID,
		})
	}
	return out, nil
}
