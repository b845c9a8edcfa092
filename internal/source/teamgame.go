package source

import (
	"fmt"
	"time"

	"github.com/kterra/match-ingest/internal/domain/draft"
	"github.com/kterra/match-ingest/internal/platform/normalize"
)

// TeamGameCriticalColumns disqualify a per-game row when empty.
var TeamGameCriticalColumns = []string{"gameid", "t1_id", "t2_id"}

// TeamGameDedupKey keeps one row per game.
var TeamGameDedupKey = []string{"gameid"}

// TeamGameRow is the canonical per-game row: one game, two team sides. Both
// the team-level CSV and the spreadsheet variant map onto it, so everything
// downstream of the mapper is shared.
type TeamGameRow struct {
	GameID string `validate:"required"`
	Date   *time.Time
	League string
	Patch  string
	Sides  [2]TeamSide `validate:"dive"`
}

// TeamSide is one team's half of a game row.
type TeamSide struct {
	TeamID   string `validate:"required"`
	TeamName string
	Kills    int
	Deaths   int
	Bans     [draft.MaxOrdinal]string
	Picks    [draft.MaxOrdinal]PickSlot
}

// PickSlot is one ordered draft slot. A slot participates only when both
// Champion and PlayerID are present.
type PickSlot struct {
	Champion string
	PlayerID string
	Position string
}

// MapTeamGameRow converts one validated raw record into a canonical row.
// Column prefixes t1_/t2_ select the side.
func MapTeamGameRow(rec Record) TeamGameRow {
	row := TeamGameRow{
		GameID: rec["gameid"],
		League: rec["league"],
		Patch:  rec["patch"],
	}
	if d, ok := normalize.CoerceDate(rec["date"]); ok {
		row.Date = &d
	}
	for side := 0; side < 2; side++ {
		prefix := fmt.Sprintf("t%d", side+1)
		s := TeamSide{
			TeamID:   rec[prefix+"_id"],
			TeamName: normalize.DisplayName(rec[prefix+"_name"]),
			Kills:    normalize.CoerceInt(rec[prefix+"_kills"]),
			Deaths:   normalize.CoerceInt(rec[prefix+"_deaths"]),
		}
		for i := 0; i < draft.MaxOrdinal; i++ {
			s.Bans[i] = rec[fmt.Sprintf("%s_ban%d", prefix, i+1)]
			s.Picks[i] = PickSlot{
				Champion: rec[fmt.Sprintf("%sp%d_champion", prefix, i+1)],
				PlayerID: rec[fmt.Sprintf("%sp%d_playerid", prefix, i+1)],
				Position: rec[fmt.Sprintf("%sp%d_position", prefix, i+1)],
			}
		}
		row.Sides[side] = s
	}
	return row
}

// MapTeamGameRows maps a filtered row set in order.
func MapTeamGameRows(recs []Record) []TeamGameRow {
	out := make([]TeamGameRow, 0, len(recs))
	for _, rec := range recs {
		out = append(out, MapTeamGameRow(rec))
	}
	return out
}
