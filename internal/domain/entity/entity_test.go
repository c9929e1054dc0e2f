package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)

	return tod
}

func TestQuietHours_Contains(t *testing.T) {
	overnight := QuietHours{Start: mustTime(t, "22:00"), End: mustTime(t, "06:00")}
	daytime := QuietHours{Start: mustTime(t, "13:00"), End: mustTime(t, "15:00")}
	empty := QuietHours{Start: mustTime(t, "08:00"), End: mustTime(t, "08:00")}

	tests := []struct {
		name  string
		hours QuietHours
		at    string
		want  bool
	}{
		{name: "overnight late evening", hours: overnight, at: "23:30", want: true},
		{name: "overnight after midnight", hours: overnight, at: "02:00", want: true},
		{name: "overnight noon", hours: overnight, at: "12:00", want: false},
		{name: "overnight start is inclusive", hours: overnight, at: "22:00", want: true},
		{name: "overnight end is exclusive", hours: overnight, at: "06:00", want: false},
		{name: "daytime inside", hours: daytime, at: "14:59", want: true},
		{name: "daytime end is exclusive", hours: daytime, at: "15:00", want: false},
		{name: "daytime before", hours: daytime, at: "12:59", want: false},
		{name: "equal bounds is empty", hours: empty, at: "08:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hours.Contains(mustTime(t, tt.at)))
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("07:05")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(7*60+5), tod)
	assert.Equal(t, "07:05", tod.String())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("")
	assert.Error(t, err)
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryConcert, ParseCategory("Concert"))
	assert.Equal(t, CategoryCityEvent, ParseCategory(" city_event "))
	assert.Equal(t, CategoryOther, ParseCategory("standup"))
	assert.Equal(t, CategoryOther, ParseCategory(""))
}

func TestRawEvent_Validate(t *testing.T) {
	lat, lon := 51.66, 39.2
	badLat := 91.0
	start := time.Date(2026, 5, 1, 19, 0, 0, 0, time.UTC)

	valid := &RawEvent{Title: "Show", StartTime: start, Latitude: &lat, Longitude: &lon}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, (&RawEvent{Title: " ", StartTime: start, Latitude: &lat, Longitude: &lon}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&RawEvent{Title: "Show", Latitude: &lat, Longitude: &lon}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&RawEvent{Title: "Show", StartTime: start, Latitude: &lat}).Validate(), ErrMissingCoordinates)
	assert.ErrorIs(t, (&RawEvent{Title: "Show", StartTime: start, Latitude: &badLat, Longitude: &lon}).Validate(), ErrValidation)
}

func TestEvent_EffectiveEnd(t *testing.T) {
	start := time.Date(2026, 5, 1, 19, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	assert.Equal(t, start, (&Event{StartTime: start}).EffectiveEnd())
	assert.Equal(t, end, (&Event{StartTime: start, EndTime: &end}).EffectiveEnd())
}

func TestImportStats_Merge(t *testing.T) {
	total := &ImportStats{}
	total.Merge(&ImportStats{Total: 3, Created: 1, Updated: 1, SkippedNoCoords: 1})
	total.Merge(&ImportStats{Total: 2, Errors: 2})
	total.Merge(nil)

	assert.Equal(t, 5, total.Total)
	assert.Equal(t, 1, total.Created)
	assert.Equal(t, 1, total.Updated)
	assert.Equal(t, 2, total.Errors)
	assert.Equal(t, 1, total.SkippedNoCoords)
}
