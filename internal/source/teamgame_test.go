package source

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func teamGameRecord() Record {
	rec := Record{
		"gameid":    "G9",
		"date":      "2024-04-01",
		"league":    "LEC",
		"patch":     "14.6",
		"t1_id":     "T1",
		"t1_name":   "Alpha",
		"t1_kills":  "15",
		"t1_deaths": "7",
		"t2_id":     "T2",
		"t2_name":   "Beta",
		"t2_kills":  "7",
		"t2_deaths": "15",
		"t1_ban1":   "Ahri",
		"t2_ban1":   "Lee Sin",
	}
	rec["t1p1_champion"] = "Jax"
	rec["t1p1_playerid"] = "P1"
	rec["t1p1_position"] = "TOP"
	rec["t2p1_champion"] = "Orianna"
	rec["t2p1_playerid"] = "P6"
	return rec
}

func TestMapTeamGameRow(t *testing.T) {
	t.Parallel()

	row := MapTeamGameRow(teamGameRecord())

	require.Equal(t, "G9", row.GameID)
	require.NotNil(t, row.Date)

	require.Equal(t, "T1", row.Sides[0].TeamID)
	require.Equal(t, "Alpha", row.Sides[0].TeamName)
	require.Equal(t, 15, row.Sides[0].Kills)
	require.Equal(t, "Ahri", row.Sides[0].Bans[0])
	require.Equal(t, PickSlot{Champion: "Jax", PlayerID: "P1", Position: "TOP"}, row.Sides[0].Picks[0])

	require.Equal(t, "T2", row.Sides[1].TeamID)
	require.Equal(t, "Lee Sin", row.Sides[1].Bans[0])
	require.Equal(t, "Orianna", row.Sides[1].Picks[0].Champion)
	// Unfilled slots stay empty rather than defaulting.
	require.Equal(t, PickSlot{}, row.Sides[1].Picks[4])
}

func TestMapTeamGameRow_MissingTeamName(t *testing.T) {
	t.Parallel()

	rec := teamGameRecord()
	rec["t2_name"] = ""
	row := MapTeamGameRow(rec)
	require.Equal(t, "Unknown", row.Sides[1].TeamName)
}
