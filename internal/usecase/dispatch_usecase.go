package usecase

import (
	"context"
	"time"

	"eventradar/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchUsecase defines the interface for alerting recipients about new events
type DispatchUsecase interface {
	// NotifyNewEvents sends each eligible recipient one message covering the given events
	NotifyNewEvents(ctx context.Context, eventIDs []uuid.UUID) (*entity.DispatchReport, error)
}

// DigestUsecase defines the interface for the daily summary of today's events
type DigestUsecase interface {
	// SendDailyDigest sends today's events, as of now, to every digest subscriber
	SendDailyDigest(ctx context.Context, now time.Time) (*entity.DigestReport, error)
}
