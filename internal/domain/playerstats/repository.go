package playerstats

import "context"

type Repository interface {
	Upsert(ctx context.Context, line Line) error
	GetByKey(ctx context.Context, gameID, playerID string) (Line, bool, error)
}
