package usecase

import (
	"context"

	"eventradar/internal/domain/entity"
)

// RecipientPreferences represents the preference fields collected for a recipient
type RecipientPreferences struct {
	AccountID            string   `json:"account_id" validate:"required,max=64"`
	Channel              string   `json:"channel" validate:"omitempty,oneof=telegram fcm"`
	Address              string   `json:"address" validate:"required,max=4096"`
	NotificationsEnabled bool     `json:"notifications_enabled"`
	NotifyOnImport       bool     `json:"notify_on_import"`
	Latitude             *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude            *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	RadiusMeters         float64  `json:"radius_meters" validate:"gte=0"`
	City                 string   `json:"city" validate:"max=64"`
	Categories           []string `json:"categories" validate:"max=16"`
	QuietStart           string   `json:"quiet_start"`
	QuietEnd             string   `json:"quiet_end"`
	Timezone             string   `json:"timezone"`
}

// RecipientUsecase defines the interface for maintaining the recipient directory
type RecipientUsecase interface {
	// SavePreferences creates or updates a recipient and reactivates it
	SavePreferences(ctx context.Context, prefs *RecipientPreferences) (*entity.Recipient, error)

	// GetRecipient retrieves a recipient by account ID
	GetRecipient(ctx context.Context, accountID string) (*entity.Recipient, error)
}
