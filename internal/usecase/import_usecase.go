package usecase

import (
	"context"

	"eventradar/internal/domain/entity"
)

// ImportUsecase defines the interface for pulling events from sources into the event store
type ImportUsecase interface {
	// Import fetches events for city from source and upserts them, returning per-run statistics
	Import(ctx context.Context, source entity.Source, city string, windowDays, limit int) (*entity.ImportStats, error)

	// RunImport imports source for city with the configured window and limit
	RunImport(ctx context.Context, source entity.Source, city string) (*entity.ImportStats, error)

	// ImportAll imports every configured city from every enabled source and aggregates the results.
	// A failing source only loses its own portion; storage loss aborts the whole pass.
	ImportAll(ctx context.Context) (*entity.ImportStats, error)
}
