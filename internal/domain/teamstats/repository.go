package teamstats

import "context"

type Repository interface {
	Upsert(ctx context.Context, line Line) error
	GetByKey(ctx context.Context, gameID, teamID string) (Line, bool, error)
}
