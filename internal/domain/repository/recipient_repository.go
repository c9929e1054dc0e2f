package repository

import (
	"context"

	"eventradar/internal/domain/entity"

	"github.com/google/uuid"
)

// RecipientRepository defines the interface for the recipient directory.
type RecipientRepository interface {
	// UpsertRecipient creates or replaces a recipient keyed by its account ID.
	UpsertRecipient(ctx context.Context, recipient *entity.Recipient) error

	// FindByAccountID retrieves a recipient by its external account ID.
	FindByAccountID(ctx context.Context, accountID string) (*entity.Recipient, error)

	// FindNewEventSubscribers returns active recipients with notifications enabled and notify-on-import set.
	FindNewEventSubscribers(ctx context.Context) ([]*entity.Recipient, error)

	// FindDigestSubscribers returns active recipients with notifications enabled.
	FindDigestSubscribers(ctx context.Context) ([]*entity.Recipient, error)

	// Deactivate clears the active flag of a recipient.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// CountRecipients returns the total and the active number of recipients.
	CountRecipients(ctx context.Context) (total, active int64, err error)
}
