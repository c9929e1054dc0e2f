package impl

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"eventradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestFormatNewEvents_Single(t *testing.T) {
	end := testStart.Add(2 * time.Hour)
	event := newTestEvent("Jazz night", 55.75, 37.61, testStart)
	event.Venue = "Club"
	event.Price = "500 RUB"
	event.EndTime = &end
	event.Description = strings.Repeat("a", 200)
	event.SourceURL = "https://example.com/jazz"

	text := formatNewEvents([]*entity.Event{event}, 5, time.UTC)

	assert.True(t, strings.HasPrefix(text, "New event near you!\n\nJazz night\n"))
	assert.Contains(t, text, "Venue: Club")
	assert.Contains(t, text, "When: 01.05.2026 19:00 - 21:00")
	assert.Contains(t, text, "Price: 500 RUB")
	assert.Contains(t, text, strings.Repeat("a", 150)+"...")
	assert.NotContains(t, text, strings.Repeat("a", 151))
	assert.True(t, strings.HasSuffix(text, "https://example.com/jazz"))
}

func TestFormatNewEvents_ListIsCapped(t *testing.T) {
	events := make([]*entity.Event, 0, 7)
	for i := range 7 {
		events = append(events, newTestEvent(fmt.Sprintf("Event %d", i+1), 55.75, 37.61, testStart))
	}

	text := formatNewEvents(events, 5, time.UTC)

	assert.True(t, strings.HasPrefix(text, "7 new events near you!"))
	assert.Contains(t, text, "5. Event 5")
	assert.NotContains(t, text, "Event 6")
	assert.True(t, strings.HasSuffix(text, "...and 2 more"))
}

func TestFormatNewEvents_Empty(t *testing.T) {
	assert.Empty(t, formatNewEvents(nil, 5, time.UTC))
}

func TestFormatDigest(t *testing.T) {
	first := newTestEvent("Morning run", 55.75, 37.61, time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC))
	first.Venue = "Park"
	second := newTestEvent("Opera", 55.75, 37.61, time.Date(2026, 5, 1, 19, 30, 0, 0, time.UTC))

	text := formatDigest(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), []*entity.Event{first, second}, 10, time.UTC)

	assert.Equal(t, "Events today (01.05.2026)\n\n1. Morning run (Park)\n   08:00\n2. Opera\n   19:30", text)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 10))
	assert.Equal(t, "Моск...", truncateRunes("Москва", 4))
}
