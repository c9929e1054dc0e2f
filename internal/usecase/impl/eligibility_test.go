package impl

import (
	"testing"
	"time"

	"eventradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
)

var testStart = time.Date(2026, 5, 1, 19, 0, 0, 0, time.UTC)

func TestEligibility_Radius(t *testing.T) {
	filter := NewEligibility(5000, time.UTC)

	recipient := newTestRecipient(entity.ChannelTelegram, "100")
	recipient.Latitude = floatPtr(55.7558)
	recipient.Longitude = floatPtr(37.6173)

	event := newTestEvent("Jazz", 55.7601, 37.6186, testStart)
	distance := geo.Distance(orb.Point{37.6173, 55.7558}, orb.Point{37.6186, 55.7601})

	tests := []struct {
		name   string
		radius float64
		want   int
	}{
		{name: "distance equal to radius is included", radius: distance, want: 1},
		{name: "radius just below distance excludes", radius: distance - 0.001, want: 0},
		{name: "large radius includes", radius: 10000, want: 1},
		{name: "zero radius falls back to default", radius: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipient.RadiusMeters = tt.radius
			got := filter.Events(recipient, []*entity.Event{event}, nil)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestEligibility_NoLocationMatchesEverywhere(t *testing.T) {
	filter := NewEligibility(100, time.UTC)
	recipient := newTestRecipient(entity.ChannelTelegram, "100")

	events := []*entity.Event{
		newTestEvent("Far north", 69.0, 33.0, testStart),
		newTestEvent("Far east", 43.1, 131.9, testStart),
	}

	assert.Len(t, filter.Events(recipient, events, nil), 2)
}

func TestEligibility_FiltersCombine(t *testing.T) {
	filter := NewEligibility(5000, time.UTC)

	concert := newTestEvent("Concert", 55.75, 37.61, testStart)
	theater := newTestEvent("Play", 55.75, 37.61, testStart)
	theater.Category = entity.CategoryTheater
	spbConcert := newTestEvent("Concert SPb", 55.75, 37.61, testStart)
	spbConcert.City = "spb"
	events := []*entity.Event{concert, theater, spbConcert}

	t.Run("city and category", func(t *testing.T) {
		recipient := newTestRecipient(entity.ChannelTelegram, "100")
		recipient.PreferredCity = "msk"
		recipient.PreferredCategories = []entity.Category{entity.CategoryConcert}

		got := filter.Events(recipient, events, nil)
		assert.Equal(t, []*entity.Event{concert}, got)
	})

	t.Run("already notified", func(t *testing.T) {
		recipient := newTestRecipient(entity.ChannelTelegram, "100")
		notified := map[uuid.UUID]struct{}{concert.ID: {}}

		got := filter.Events(recipient, events, notified)
		assert.Equal(t, []*entity.Event{theater, spbConcert}, got)
	})

	t.Run("notifications disabled", func(t *testing.T) {
		recipient := newTestRecipient(entity.ChannelTelegram, "100")
		recipient.NotificationsEnabled = false

		assert.Empty(t, filter.Events(recipient, events, nil))
	})
}

func TestEligibility_InQuietHours(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Skip("tzdata not available")
	}
	filter := NewEligibility(0, moscow)

	recipient := newTestRecipient(entity.ChannelTelegram, "100")
	recipient.QuietHours = &entity.QuietHours{Start: 22 * 60, End: 7 * 60}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "late evening", at: time.Date(2026, 5, 1, 23, 30, 0, 0, moscow), want: true},
		{name: "early morning", at: time.Date(2026, 5, 1, 6, 59, 0, 0, moscow), want: true},
		{name: "end is exclusive", at: time.Date(2026, 5, 1, 7, 0, 0, 0, moscow), want: false},
		{name: "start is inclusive", at: time.Date(2026, 5, 1, 22, 0, 0, 0, moscow), want: true},
		{name: "afternoon", at: time.Date(2026, 5, 1, 15, 0, 0, 0, moscow), want: false},
		{name: "utc instant converted", at: time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.InQuietHours(recipient, tt.at))
		})
	}

	t.Run("recipient timezone wins", func(t *testing.T) {
		r := *recipient
		r.Timezone = "UTC"
		assert.False(t, filter.InQuietHours(&r, time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)))
	})

	t.Run("no quiet hours", func(t *testing.T) {
		r := *recipient
		r.QuietHours = nil
		assert.False(t, filter.InQuietHours(&r, time.Date(2026, 5, 1, 23, 0, 0, 0, moscow)))
	})
}
