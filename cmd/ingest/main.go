package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/kterra/match-ingest/internal/config"
	"github.com/kterra/match-ingest/internal/infrastructure/repository/postgres"
	"github.com/kterra/match-ingest/internal/platform/logging"
	"github.com/kterra/match-ingest/internal/source"
	"github.com/kterra/match-ingest/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	db, err := postgres.Connect(ctx, cfg.DSN())
	if err != nil {
		logger.Error("connect to database", "host", cfg.DBHost, "db", cfg.DBName, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("ingest run starting",
		"commit_mode", cfg.CommitMode,
		"participant_csv", cfg.ParticipantCSV,
		"team_csv", cfg.TeamCSV,
		"team_xlsx", cfg.TeamXLSX,
	)

	var total usecase.Summary
	for _, p := range passes(cfg) {
		sum, err := runPass(ctx, db, cfg.CommitMode, logger, p)
		if err != nil {
			logger.Error("pass failed", "file", p.path, "error", err)
			continue
		}
		logger.Info("pass finished",
			"file", p.path,
			"rows_seen", sum.RowsSeen,
			"rows_loaded", sum.RowsLoaded,
			"rows_skipped", sum.RowsSkipped,
			"statement_errors", sum.StatementErrors,
			"ordinal_rejects", sum.OrdinalRejects,
		)
		total.Merge(sum)
	}

	line, err := sonic.MarshalString(total)
	if err != nil {
		logger.Error("encode run summary", "error", err)
		os.Exit(1)
	}
	fmt.Println(line)
	logger.Info("ingest run finished", "rows_loaded", total.RowsLoaded, "rows_skipped", total.RowsSkipped)
}

// pass is one source file plus the loader that consumes it.
type pass struct {
	name string
	path string
	load func(ctx context.Context, svc *usecase.IngestionService) (usecase.Summary, error)
}

// passes builds the configured file passes in their fixed order: player rows
// first, then the per-game layouts.
func passes(cfg config.Config) []pass {
	var out []pass
	if cfg.ParticipantCSV != "" {
		path := cfg.ParticipantCSV
		out = append(out, pass{
			name: "participants",
			path: path,
			load: func(ctx context.Context, svc *usecase.IngestionService) (usecase.Summary, error) {
				tbl, err := source.ReadCSV(path)
				if err != nil {
					return usecase.Summary{}, err
				}
				rows := source.Require(tbl.Rows, source.ParticipantCriticalColumns...)
				rows = source.DedupFirst(rows, source.ParticipantDedupKey...)
				canonical := source.DefaultParticipantSchema().MapRows(rows)
				return svc.LoadParticipants(ctx, canonical), nil
			},
		})
	}
	if cfg.TeamCSV != "" {
		out = append(out, teamGamePass("team games (csv)", cfg.TeamCSV, source.ReadCSV))
	}
	if cfg.TeamXLSX != "" {
		out = append(out, teamGamePass("team games (xlsx)", cfg.TeamXLSX, source.ReadXLSX))
	}
	return out
}

func teamGamePass(name, path string, read func(string) (source.Table, error)) pass {
	return pass{
		name: name,
		path: path,
		load: func(ctx context.Context, svc *usecase.IngestionService) (usecase.Summary, error) {
			tbl, err := read(path)
			if err != nil {
				return usecase.Summary{}, err
			}
			rows := source.Require(tbl.Rows, source.TeamGameCriticalColumns...)
			rows = source.DedupFirst(rows, source.TeamGameDedupKey...)
			return svc.LoadTeamGames(ctx, source.MapTeamGameRows(rows)), nil
		},
	}
}

// runPass runs one file pass under the configured commit mode. Statement mode
// hands the loader the pooled connection so every write autocommits; file
// mode wraps the whole pass in a transaction that rolls back on failure.
func runPass(ctx context.Context, db *sqlx.DB, commitMode string, logger *logging.Logger, p pass) (usecase.Summary, error) {
	logger.Info("pass starting", "pass", p.name, "file", p.path)

	if commitMode == config.CommitModeFile {
		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return usecase.Summary{}, err
		}
		sum, err := p.load(ctx, newService(tx, logger))
		if err != nil {
			_ = tx.Rollback()
			return usecase.Summary{}, err
		}
		if err := tx.Commit(); err != nil {
			return usecase.Summary{}, err
		}
		return sum, nil
	}

	return p.load(ctx, newService(db, logger))
}

func newService(exec postgres.Executor, logger *logging.Logger) *usecase.IngestionService {
	return usecase.NewIngestionService(usecase.Repositories{
		Games:       postgres.NewGameRepository(exec),
		Teams:       postgres.NewTeamRepository(exec),
		Players:     postgres.NewPlayerRepository(exec),
		Champions:   postgres.NewChampionRepository(exec),
		PlayerStats: postgres.NewPlayerStatsRepository(exec),
		TeamStats:   postgres.NewTeamStatsRepository(exec),
		Draft:       postgres.NewDraftRepository(exec),
	}, logger)
}
