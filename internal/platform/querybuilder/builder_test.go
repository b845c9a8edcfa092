package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelect_KeyedLookup(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("champion").
		Where(Eq("champion_id", "lee_sin")).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT * FROM champion WHERE champion_id = $1", query)
	require.Equal(t, []any{"lee_sin"}, args)
}

func TestSelect_OrderAndLimit(t *testing.T) {
	t.Parallel()

	query, args, err := Select("ban_order", "champion_id").From("ban").
		Where(Eq("game_id", "G1"), Eq("team_id", "T1")).
		OrderBy("ban_order").
		Limit(5).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t,
		"SELECT ban_order, champion_id FROM ban WHERE game_id = $1 AND team_id = $2 ORDER BY ban_order LIMIT 5",
		query)
	require.Equal(t, []any{"G1", "T1"}, args)
}

func TestInsert_WithConflictSuffix(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("team").
		Columns("team_id", "team_name").
		Values("T1", "Cloud Nine").
		Suffix("ON CONFLICT (team_id) DO UPDATE SET team_name = EXCLUDED.team_name").
		ToSQL()
	require.NoError(t, err)
	require.Equal(t,
		"INSERT INTO team (team_id, team_name) VALUES ($1, $2) ON CONFLICT (team_id) DO UPDATE SET team_name = EXCLUDED.team_name",
		query)
	require.Equal(t, []any{"T1", "Cloud Nine"}, args)
}

func TestInsert_RowArityMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("team").
		Columns("team_id", "team_name").
		Values("T1").
		ToSQL()
	require.Error(t, err)
}

func TestInsertModel(t *testing.T) {
	t.Parallel()

	model := struct {
		ID   string `db:"champion_id"`
		Name string `db:"champion_name"`
		skip string `db:"-"`
	}{ID: "ahri", Name: "Ahri"}

	query, args, err := InsertModel("champion", model, "ON CONFLICT (champion_id) DO NOTHING")
	require.NoError(t, err)
	require.Equal(t,
		"INSERT INTO champion (champion_id, champion_name) VALUES ($1, $2) ON CONFLICT (champion_id) DO NOTHING",
		query)
	require.Equal(t, []any{"ahri", "Ahri"}, args)
}
