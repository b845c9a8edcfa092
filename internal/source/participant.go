package source

import (
	"fmt"
	"time"

	"github.com/kterra/match-ingest/internal/domain/draft"
	"github.com/kterra/match-ingest/internal/platform/normalize"
)

// ParticipantCriticalColumns disqualify a per-player row when empty.
var ParticipantCriticalColumns = []string{"gameid", "teamid", "playerid", "champion"}

// ParticipantDedupKey is the composite natural key of a per-player row.
var ParticipantDedupKey = []string{"gameid", "playerid", "teamid"}

// ParticipantSchema maps the per-player column layout onto ParticipantRow.
// GoldColumn names the numeric column standing in for earned gold; the
// export carries no direct gold column, so damage dealt is the documented
// default stand-in. Swap it when a better column is available.
type ParticipantSchema struct {
	GoldColumn string
}

func DefaultParticipantSchema() ParticipantSchema {
	return ParticipantSchema{GoldColumn: "damagetochampions"}
}

// ParticipantRow is the canonical per-player row fed to the loader.
type ParticipantRow struct {
	GameID     string `validate:"required"`
	Date       *time.Time
	League     string
	Patch      string
	PlayerID   string `validate:"required"`
	PlayerName string
	TeamID     string `validate:"required"`
	TeamName   string
	Champion   string `validate:"required"`
	Position   string
	Kills      int
	Deaths     int
	Assists    int
	GoldEarned int
	CreepScore int
	// Bans holds champion display names by ordinal; empty slots are absent.
	Bans [draft.MaxOrdinal]string
}

// MapRow converts one validated raw record into a canonical row. Numeric
// fields use the digits-only coercion contract and dates degrade to absent.
func (s ParticipantSchema) MapRow(rec Record) ParticipantRow {
	row := ParticipantRow{
		GameID:     rec["gameid"],
		League:     rec["league"],
		Patch:      rec["patch"],
		PlayerID:   rec["playerid"],
		PlayerName: normalize.DisplayName(rec["playername"]),
		TeamID:     rec["teamid"],
		TeamName:   normalize.DisplayName(rec["teamname"]),
		Champion:   normalize.DisplayName(rec["champion"]),
		Position:   normalize.DisplayName(rec["position"]),
		Kills:      normalize.CoerceInt(rec["kills"]),
		Deaths:     normalize.CoerceInt(rec["deaths"]),
		Assists:    normalize.CoerceInt(rec["assists"]),
		CreepScore: normalize.CoerceInt(rec["cs"]),
	}
	if d, ok := normalize.CoerceDate(rec["date"]); ok {
		row.Date = &d
	}
	if s.GoldColumn != "" {
		row.GoldEarned = normalize.CoerceInt(rec[s.GoldColumn])
	}
	for i := 0; i < draft.MaxOrdinal; i++ {
		row.Bans[i] = rec[fmt.Sprintf("ban%d", i+1)]
	}
	return row
}

// MapRows maps a filtered row set in order.
func (s ParticipantSchema) MapRows(recs []Record) []ParticipantRow {
	out := make([]ParticipantRow, 0, len(recs))
	for _, rec := range recs {
		out = append(out, s.MapRow(rec))
	}
	return out
}
