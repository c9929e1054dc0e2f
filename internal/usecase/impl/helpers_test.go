package impl

import (
	"io"
	"log/slog"
	"time"

	"eventradar/config"
	"eventradar/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Importer: &config.ImporterConfig{
			Cities:   []string{"msk", "spb"},
			Sources:  []string{"kudago"},
			Timezone: "UTC",
		},
		Notification: &config.NotificationConfig{
			Timezone: "UTC",
		},
		Dispatch: &config.DispatchConfig{
			Workers:      4,
			RetryMax:     1,
			RetryBackoff: time.Millisecond,
		},
	}
	cfg.ApplyDefaults()

	return cfg
}

func floatPtr(v float64) *float64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func newTestEvent(title string, lat, lon float64, start time.Time) *entity.Event {
	return &entity.Event{
		ID:        uuid.New(),
		Source:    entity.SourceKudaGo,
		Title:     title,
		Category:  entity.CategoryConcert,
		Latitude:  lat,
		Longitude: lon,
		StartTime: start,
		City:      "msk",
	}
}

func newTestRecipient(channel entity.Channel, address string) *entity.Recipient {
	return &entity.Recipient{
		ID:                   uuid.New(),
		AccountID:            address,
		Channel:              channel,
		Address:              address,
		IsActive:             true,
		NotificationsEnabled: true,
		NotifyOnImport:       true,
	}
}
