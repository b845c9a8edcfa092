package game

import "context"

// Repository describes game persistence needs from the ingestion pipeline.
type Repository interface {
	Upsert(ctx context.Context, g Game) error
	GetByID(ctx context.Context, gameID string) (Game, bool, error)
}
