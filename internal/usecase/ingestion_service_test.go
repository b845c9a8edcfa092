package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kterra/match-ingest/internal/domain/draft"
	"github.com/kterra/match-ingest/internal/infrastructure/repository/memory"
	"github.com/kterra/match-ingest/internal/platform/logging"
	"github.com/kterra/match-ingest/internal/source"
)

type memoryStore struct {
	games       *memory.GameRepository
	teams       *memory.TeamRepository
	players     *memory.PlayerRepository
	champions   *memory.ChampionRepository
	playerStats *memory.PlayerStatsRepository
	teamStats   *memory.TeamStatsRepository
	draft       *memory.DraftRepository
}

func newTestService(t *testing.T) (*IngestionService, *memoryStore) {
	t.Helper()
	store := &memoryStore{
		games:       memory.NewGameRepository(),
		teams:       memory.NewTeamRepository(),
		players:     memory.NewPlayerRepository(),
		champions:   memory.NewChampionRepository(),
		playerStats: memory.NewPlayerStatsRepository(),
		teamStats:   memory.NewTeamStatsRepository(),
		draft:       memory.NewDraftRepository(),
	}
	svc := NewIngestionService(Repositories{
		Games:       store.games,
		Teams:       store.teams,
		Players:     store.players,
		Champions:   store.champions,
		PlayerStats: store.playerStats,
		TeamStats:   store.teamStats,
		Draft:       store.draft,
	}, logging.NewNop())
	return svc, store
}

func participantFixture() source.ParticipantRow {
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	return source.ParticipantRow{
		GameID:     "G1",
		Date:       &date,
		League:     "LCK",
		Patch:      "14.05",
		PlayerID:   "P1",
		PlayerName: "Faker",
		TeamID:     "T1",
		TeamName:   "T1 Esports",
		Champion:   "Ahri",
		Position:   "Mid",
		Kills:      5,
		Deaths:     2,
		Assists:    7,
		GoldEarned: 14250,
		CreepScore: 310,
		Bans:       [draft.MaxOrdinal]string{"Lee Sin", "", "Azir"},
	}
}

func TestLoadParticipantsCreatesEntitiesAndStats(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	sum := svc.LoadParticipants(ctx, []source.ParticipantRow{participantFixture()})

	require.Equal(t, 1, sum.RowsSeen)
	require.Equal(t, 1, sum.RowsLoaded)
	require.Zero(t, sum.RowsSkipped)
	require.Zero(t, sum.StatementErrors)

	g, ok, err := store.games.GetByID(ctx, "G1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "LCK", g.League)
	require.NotNil(t, g.Date)

	p, ok, err := store.players.GetByID(ctx, "P1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Faker", p.Name)

	c, ok, err := store.champions.GetByID(ctx, "ahri")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Ahri", c.Name)

	line, ok, err := store.playerStats.GetByKey(ctx, "G1", "P1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5, line.Kills)
	require.Equal(t, 2, line.Deaths)
	require.Equal(t, 7, line.Assists)
	require.Equal(t, 14250, line.GoldEarned)
	require.Equal(t, "ahri", line.ChampionID)

	bans, err := store.draft.ListBans(ctx, "G1", "T1")
	require.NoError(t, err)
	require.Len(t, bans, 2)
	require.Equal(t, 1, bans[0].Order)
	require.Equal(t, "lee_sin", bans[0].ChampionID)
	require.Equal(t, 3, bans[1].Order)
	require.Equal(t, "azir", bans[1].ChampionID)
}

func TestLoadParticipantsIsIdempotent(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	rows := []source.ParticipantRow{participantFixture()}

	svc.LoadParticipants(ctx, rows)
	svc.LoadParticipants(ctx, rows)

	require.Equal(t, 1, store.games.Len())
	require.Equal(t, 1, store.players.Len())
	require.Equal(t, 1, store.teams.Len())
	require.Equal(t, 1, store.playerStats.Len())

	bans, err := store.draft.ListBans(ctx, "G1", "T1")
	require.NoError(t, err)
	require.Len(t, bans, 2)
}

func TestLoadParticipantsReingestUpdatesStats(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	first := participantFixture()
	svc.LoadParticipants(ctx, []source.ParticipantRow{first})

	corrected := first
	corrected.Kills = 8
	sum := svc.LoadParticipants(ctx, []source.ParticipantRow{corrected})

	require.Equal(t, 1, sum.RowsLoaded)
	line, ok, err := store.playerStats.GetByKey(ctx, "G1", "P1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 8, line.Kills)
	require.Equal(t, 1, store.playerStats.Len())
}

func TestLoadParticipantsSkipsInvalidRow(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	bad := participantFixture()
	bad.Champion = ""
	sum := svc.LoadParticipants(ctx, []source.ParticipantRow{bad})

	require.Equal(t, 1, sum.RowsSeen)
	require.Equal(t, 1, sum.RowsSkipped)
	require.Zero(t, sum.RowsLoaded)
	require.Zero(t, store.games.Len())
	require.Zero(t, store.playerStats.Len())
}

func teamGameFixture() source.TeamGameRow {
	return source.TeamGameRow{
		GameID: "G2",
		League: "LEC",
		Patch:  "14.06",
		Sides: [2]source.TeamSide{
			{
				TeamID:   "T1",
				TeamName: "T1 Esports",
				Kills:    18,
				Deaths:   9,
				Bans:     [draft.MaxOrdinal]string{"Lee Sin", "Azir"},
				Picks: [draft.MaxOrdinal]source.PickSlot{
					{Champion: "Ahri", PlayerID: "P1", Position: "Mid"},
					{Champion: "Jinx", PlayerID: "P2", Position: "Bot"},
				},
			},
			{
				TeamID:   "T2",
				TeamName: "G2 Esports",
				Kills:    9,
				Deaths:   18,
				Bans:     [draft.MaxOrdinal]string{"Rell"},
				Picks: [draft.MaxOrdinal]source.PickSlot{
					{Champion: "Orianna", PlayerID: "P3", Position: "Mid"},
					// No player id, so the slot is not a pick.
					{Champion: "Nautilus", Position: "Sup"},
				},
			},
		},
	}
}

func TestLoadTeamGamesCreatesBothSides(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	sum := svc.LoadTeamGames(ctx, []source.TeamGameRow{teamGameFixture()})

	require.Equal(t, 1, sum.RowsLoaded)
	require.Zero(t, sum.StatementErrors)

	require.Equal(t, 1, store.games.Len())
	require.Equal(t, 2, store.teams.Len())
	require.Equal(t, 2, store.teamStats.Len())

	ts, ok, err := store.teamStats.GetByKey(ctx, "G2", "T1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 18, ts.TotalKills)
	require.Equal(t, 9, ts.TotalDeaths)
	require.Zero(t, ts.TotalAssists)

	picks, err := store.draft.ListPicks(ctx, "G2", "T1")
	require.NoError(t, err)
	require.Len(t, picks, 2)
	require.Equal(t, "ahri", picks[0].ChampionID)
	require.Equal(t, "P1", picks[0].PlayerID)

	// The incomplete slot on side two is skipped silently.
	picks, err = store.draft.ListPicks(ctx, "G2", "T2")
	require.NoError(t, err)
	require.Len(t, picks, 1)
	require.Equal(t, "orianna", picks[0].ChampionID)

	// Picked players exist with placeholder names.
	p, ok, err := store.players.GetByID(ctx, "P2")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Unknown", p.Name)
	require.Equal(t, "Bot", p.Position)
}

func TestLoadTeamGamesIsIdempotent(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	rows := []source.TeamGameRow{teamGameFixture()}

	svc.LoadTeamGames(ctx, rows)
	svc.LoadTeamGames(ctx, rows)

	require.Equal(t, 1, store.games.Len())
	require.Equal(t, 2, store.teams.Len())
	require.Equal(t, 2, store.teamStats.Len())

	bans, err := store.draft.ListBans(ctx, "G2", "T1")
	require.NoError(t, err)
	require.Len(t, bans, 2)
	picks, err := store.draft.ListPicks(ctx, "G2", "T1")
	require.NoError(t, err)
	require.Len(t, picks, 2)
}

func TestLoadTeamGamesSkipsRowMissingSide(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	row := teamGameFixture()
	row.Sides[1].TeamID = ""
	sum := svc.LoadTeamGames(ctx, []source.TeamGameRow{row})

	require.Equal(t, 1, sum.RowsSkipped)
	require.Zero(t, sum.RowsLoaded)
	require.Zero(t, store.games.Len())
}

// failingDraft rejects every write so the loader's isolation policy is
// observable: the row still loads and siblings still run.
type failingDraft struct {
	*memory.DraftRepository
}

func (f failingDraft) InsertBan(ctx context.Context, b draft.Ban) error {
	b.Order = draft.MaxOrdinal + b.Order
	return f.DraftRepository.InsertBan(ctx, b)
}

func TestLoadParticipantsSuppressesOrdinalCap(t *testing.T) {
	svc, store := newTestService(t)
	svc.repos.Draft = failingDraft{DraftRepository: store.draft}
	ctx := context.Background()

	sum := svc.LoadParticipants(ctx, []source.ParticipantRow{participantFixture()})

	require.Equal(t, 1, sum.RowsLoaded)
	require.Equal(t, 2, sum.OrdinalRejects)
	require.Zero(t, sum.StatementErrors)

	// The rest of the row landed.
	require.Equal(t, 1, store.playerStats.Len())
	bans, err := store.draft.ListBans(ctx, "G1", "T1")
	require.NoError(t, err)
	require.Empty(t, bans)
}
