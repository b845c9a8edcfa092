package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/kterra/match-ingest/internal/domain/champion"
	"github.com/kterra/match-ingest/internal/domain/draft"
	"github.com/kterra/match-ingest/internal/domain/game"
	"github.com/kterra/match-ingest/internal/domain/player"
	"github.com/kterra/match-ingest/internal/domain/playerstats"
	"github.com/kterra/match-ingest/internal/domain/team"
	"github.com/kterra/match-ingest/internal/domain/teamstats"
	"github.com/kterra/match-ingest/internal/platform/logging"
	"github.com/kterra/match-ingest/internal/platform/normalize"
	"github.com/kterra/match-ingest/internal/source"
)

// Repositories bundles the write surface the loaders need.
type Repositories struct {
	Games       game.Repository
	Teams       team.Repository
	Players     player.Repository
	Champions   champion.Repository
	PlayerStats playerstats.Repository
	TeamStats   teamstats.Repository
	Draft       draft.Repository
}

// IngestionService loads validated canonical rows into the store. Within a
// row, reference entities (game, team, player, champion) are always upserted
// before the fact or child rows that reference them, so every committed row
// satisfies the foreign-key-exists invariant even if the run stops midway.
//
// Failures are contained: a failed statement is logged and skipped, a failed
// child ordinal does not stop its siblings, and a failed row does not stop
// the pass. Draft writes rejected by the ordinal cap are logged at info and
// swallowed.
type IngestionService struct {
	repos    Repositories
	logger   *logging.Logger
	validate *validator.Validate
}

func NewIngestionService(repos Repositories, logger *logging.Logger) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		repos:    repos,
		logger:   logger,
		validate: validator.New(),
	}
}

// LoadParticipants ingests per-player rows: one PlayerStats line per row plus
// the row's ban list for its team side.
func (s *IngestionService) LoadParticipants(ctx context.Context, rows []source.ParticipantRow) Summary {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.LoadParticipants")
	defer span.End()

	var sum Summary
	for _, row := range rows {
		sum.RowsSeen++
		if err := s.validate.StructCtx(ctx, row); err != nil {
			sum.RowsSkipped++
			s.logger.WarnContext(ctx, "skipping participant row", "game_id", row.GameID, "player_id", row.PlayerID, "error", err)
			continue
		}
		s.loadParticipantRow(ctx, row, &sum)
		sum.RowsLoaded++
	}
	return sum
}

func (s *IngestionService) loadParticipantRow(ctx context.Context, row source.ParticipantRow, sum *Summary) {
	s.exec(ctx, sum, "upsert game", func() error {
		return s.repos.Games.Upsert(ctx, game.Game{
			ID:     row.GameID,
			Date:   row.Date,
			League: row.League,
			Patch:  row.Patch,
		})
	})
	s.exec(ctx, sum, "upsert player", func() error {
		return s.repos.Players.Upsert(ctx, player.Player{
			ID:       row.PlayerID,
			Name:     row.PlayerName,
			Position: row.Position,
		})
	})
	s.exec(ctx, sum, "upsert team", func() error {
		return s.repos.Teams.Upsert(ctx, team.Team{ID: row.TeamID, Name: row.TeamName})
	})

	championID := normalize.Slugify(row.Champion)
	s.exec(ctx, sum, "upsert champion", func() error {
		return s.repos.Champions.Upsert(ctx, champion.Champion{ID: championID, Name: row.Champion})
	})

	s.exec(ctx, sum, "upsert player stats", func() error {
		return s.repos.PlayerStats.Upsert(ctx, playerstats.Line{
			GameID:     row.GameID,
			PlayerID:   row.PlayerID,
			TeamID:     row.TeamID,
			Position:   row.Position,
			ChampionID: championID,
			Kills:      row.Kills,
			Deaths:     row.Deaths,
			Assists:    row.Assists,
			GoldEarned: row.GoldEarned,
			CreepScore: row.CreepScore,
		})
	})

	s.loadBans(ctx, sum, row.GameID, row.TeamID, row.Bans)
}

// LoadTeamGames ingests per-game rows: team stats, bans, and picks for both
// sides. The team-level CSV and the spreadsheet variant both feed this path.
func (s *IngestionService) LoadTeamGames(ctx context.Context, rows []source.TeamGameRow) Summary {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.LoadTeamGames")
	defer span.End()

	var sum Summary
	for _, row := range rows {
		sum.RowsSeen++
		if err := s.validate.StructCtx(ctx, row); err != nil {
			sum.RowsSkipped++
			s.logger.WarnContext(ctx, "skipping team game row", "game_id", row.GameID, "error", err)
			continue
		}
		s.loadTeamGameRow(ctx, row, &sum)
		sum.RowsLoaded++
	}
	return sum
}

func (s *IngestionService) loadTeamGameRow(ctx context.Context, row source.TeamGameRow, sum *Summary) {
	s.exec(ctx, sum, "upsert game", func() error {
		return s.repos.Games.Upsert(ctx, game.Game{
			ID:     row.GameID,
			Date:   row.Date,
			League: row.League,
			Patch:  row.Patch,
		})
	})

	for _, side := range row.Sides {
		s.exec(ctx, sum, "upsert team", func() error {
			return s.repos.Teams.Upsert(ctx, team.Team{ID: side.TeamID, Name: side.TeamName})
		})
		s.exec(ctx, sum, "upsert team stats", func() error {
			return s.repos.TeamStats.Upsert(ctx, teamstats.Line{
				GameID:      row.GameID,
				TeamID:      side.TeamID,
				TotalKills:  side.Kills,
				TotalDeaths: side.Deaths,
				// The per-game layouts carry no assist totals.
				TotalAssists: 0,
			})
		})

		s.loadBans(ctx, sum, row.GameID, side.TeamID, side.Bans)
		s.loadPicks(ctx, sum, row.GameID, side.TeamID, side.Picks)
	}
}

// loadBans writes the non-empty ordinals of a ban list, upserting each banned
// champion first. Every ordinal is isolated from its siblings.
func (s *IngestionService) loadBans(ctx context.Context, sum *Summary, gameID, teamID string, bans [draft.MaxOrdinal]string) {
	for i, name := range bans {
		if name == "" {
			continue
		}
		order := i + 1
		championID := normalize.Slugify(name)
		s.exec(ctx, sum, "upsert banned champion", func() error {
			return s.repos.Champions.Upsert(ctx, champion.Champion{ID: championID, Name: normalize.DisplayName(name)})
		})
		if err := s.repos.Draft.InsertBan(ctx, draft.Ban{
			GameID:     gameID,
			TeamID:     teamID,
			Order:      order,
			ChampionID: championID,
		}); err != nil {
			s.recordDraftError(ctx, sum, "ban", gameID, teamID, order, err)
		}
	}
}

// loadPicks writes the filled ordinals of a pick list. A slot needs both a
// champion and a player; the player is upserted with a placeholder name since
// the per-game layouts carry only the player id and position.
func (s *IngestionService) loadPicks(ctx context.Context, sum *Summary, gameID, teamID string, picks [draft.MaxOrdinal]source.PickSlot) {
	for i, slot := range picks {
		if slot.Champion == "" || slot.PlayerID == "" {
			continue
		}
		order := i + 1
		championID := normalize.Slugify(slot.Champion)
		s.exec(ctx, sum, "upsert picked champion", func() error {
			return s.repos.Champions.Upsert(ctx, champion.Champion{ID: championID, Name: normalize.DisplayName(slot.Champion)})
		})
		s.exec(ctx, sum, "upsert picked player", func() error {
			return s.repos.Players.Upsert(ctx, player.Player{
				ID:       slot.PlayerID,
				Name:     normalize.UnknownName,
				Position: normalize.DisplayName(slot.Position),
			})
		})
		if err := s.repos.Draft.InsertPick(ctx, draft.Pick{
			GameID:     gameID,
			TeamID:     teamID,
			Order:      order,
			PlayerID:   slot.PlayerID,
			ChampionID: championID,
		}); err != nil {
			s.recordDraftError(ctx, sum, "pick", gameID, teamID, order, err)
		}
	}
}

// exec runs one statement, logging and counting a failure without letting it
// escape the row. This is the commit-per-statement resilience policy: one bad
// statement must not block the rest of the import.
func (s *IngestionService) exec(ctx context.Context, sum *Summary, op string, fn func() error) {
	if err := fn(); err != nil {
		sum.StatementErrors++
		s.logger.ErrorContext(ctx, op+" failed", "error", err)
	}
}

func (s *IngestionService) recordDraftError(ctx context.Context, sum *Summary, kind, gameID, teamID string, order int, err error) {
	if errors.Is(err, draft.ErrOrdinalCap) {
		sum.OrdinalRejects++
		s.logger.InfoContext(ctx, kind+" ordinal past cap ignored",
			"game_id", gameID, "team_id", teamID, "order", order)
		return
	}
	sum.StatementErrors++
	s.logger.ErrorContext(ctx, "insert "+kind+" failed",
		"game_id", gameID, "team_id", teamID, "order", order, "error", err)
}
