package draft

import "context"

// Repository persists the ordered child rows. Implementations return
// ErrOrdinalCap (wrapped is fine) when a write lands outside 1..MaxOrdinal
// for its (game, team) pair.
type Repository interface {
	InsertBan(ctx context.Context, b Ban) error
	InsertPick(ctx context.Context, p Pick) error
	ListBans(ctx context.Context, gameID, teamID string) ([]Ban, error)
	ListPicks(ctx context.Context, gameID, teamID string) ([]Pick, error)
}
