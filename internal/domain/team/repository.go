package team

import "context"

type Repository interface {
	Upsert(ctx context.Context, t Team) error
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
}
