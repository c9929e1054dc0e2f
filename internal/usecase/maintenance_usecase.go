package usecase

import (
	"context"
	"time"

	"eventradar/internal/domain/entity"
)

// CleanupUsecase defines the interface for event retention
type CleanupUsecase interface {
	// Cleanup archives ended events, then deletes long-archived ones
	Cleanup(ctx context.Context, now time.Time) (*entity.CleanupReport, error)
}

// StatsUsecase defines the interface for the health counters
type StatsUsecase interface {
	// Snapshot counts events and recipients
	Snapshot(ctx context.Context) (*entity.StoreStats, error)
}
