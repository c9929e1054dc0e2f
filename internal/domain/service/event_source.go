// Package service defines the interfaces of external collaborators used by the use cases.
package service

import (
	"context"

	"eventradar/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSourceUnavailable is returned when a source cannot be reached or answers with a failure.
var ErrSourceUnavailable = errors.New("event source unavailable")

// EventSource fetches candidate events from an external listing.
type EventSource interface {
	// Source returns the identifier stored on imported events.
	Source() entity.Source

	// Fetch returns raw events in city starting within the next windowDays days, at most limit of them.
	// Errors wrap ErrSourceUnavailable.
	Fetch(ctx context.Context, city string, windowDays, limit int) ([]*entity.RawEvent, error)
}
