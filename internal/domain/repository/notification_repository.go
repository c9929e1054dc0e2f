package repository

import (
	"context"

	"eventradar/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository defines the interface for notification history operations.
type NotificationRepository interface {
	// FindNotifiedEventIDs returns which of eventIDs the recipient has already been sent under notificationType.
	FindNotifiedEventIDs(ctx context.Context, recipientID uuid.UUID, notificationType entity.NotificationType, eventIDs []uuid.UUID) (map[uuid.UUID]struct{}, error)

	// RecordNotifications persists history records. Records that already exist are left untouched.
	RecordNotifications(ctx context.Context, records []*entity.NotificationRecord) error
}
