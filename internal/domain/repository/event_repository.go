package repository

import (
	"context"
	"time"

	"eventradar/internal/domain/entity"

	"github.com/google/uuid"
)

// EventRefresh holds the fields an import is allowed to overwrite on an existing event.
type EventRefresh struct {
	Description string
	ImageURL    string
	Price       string
	LastUpdated time.Time
}

// EventRepository defines the interface for event-related database operations.
type EventRepository interface {
	// CreateEvent persists a new event. Returns ErrDuplicateEvent when an identity index is violated.
	CreateEvent(ctx context.Context, event *entity.Event) error

	// FindBySourceID looks up an event by its source-scoped identifier.
	FindBySourceID(ctx context.Context, source entity.Source, sourceID string) (*entity.Event, error)

	// FindByFallbackKey looks up an event without a source ID by (source, title, start day).
	FindByFallbackKey(ctx context.Context, source entity.Source, title, startDay string) (*entity.Event, error)

	// RefreshEvent overwrites the mutable fields of an existing event.
	RefreshEvent(ctx context.Context, id uuid.UUID, refresh EventRefresh) error

	// FindByIDs returns the events with the given IDs, ordered by start time. Missing IDs are ignored.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Event, error)

	// FindStartingBetween returns non-archived events with from <= start_time < to, ordered by start time.
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]*entity.Event, error)

	// ArchiveEndedBefore flags non-archived events whose effective end is before cutoff.
	ArchiveEndedBefore(ctx context.Context, cutoff, now time.Time) (int64, error)

	// DeleteArchivedEndedBefore removes archived events whose effective end is before cutoff.
	DeleteArchivedEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// CountEvents returns the total and the non-archived number of events.
	CountEvents(ctx context.Context) (total, valid int64, err error)
}
