package champion

import "context"

type Repository interface {
	Upsert(ctx context.Context, c Champion) error
	GetByID(ctx context.Context, championID string) (Champion, bool, error)
}
