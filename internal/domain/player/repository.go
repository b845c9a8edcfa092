package player

import "context"

type Repository interface {
	Upsert(ctx context.Context, p Player) error
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
}
