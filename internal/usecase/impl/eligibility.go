package impl

import (
	"slices"
	"time"

	"eventradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Eligibility decides which candidate events a recipient should hear about.
// It has no side effects; history is passed in by the caller.
type Eligibility struct {
	// DefaultRadius applies to recipients with a location but no radius of their own
	DefaultRadius float64
	// DefaultLocation is the quiet-hours zone for recipients without a timezone
	DefaultLocation *time.Location
}

// NewEligibility creates an eligibility filter. A nil location means UTC.
func NewEligibility(defaultRadius float64, defaultLocation *time.Location) *Eligibility {
	if defaultLocation == nil {
		defaultLocation = time.UTC
	}

	return &Eligibility{
		DefaultRadius:   defaultRadius,
		DefaultLocation: defaultLocation,
	}
}

// Events returns the subset of events that pass every recipient filter.
// notified holds the event IDs already sent to the recipient under the new-event type.
func (f *Eligibility) Events(recipient *entity.Recipient, events []*entity.Event, notified map[uuid.UUID]struct{}) []*entity.Event {
	if !recipient.NotificationsEnabled {
		return nil
	}

	eligible := make([]*entity.Event, 0, len(events))
	for _, event := range events {
		if _, ok := notified[event.ID]; ok {
			continue
		}
		if recipient.PreferredCity != "" && event.City != recipient.PreferredCity {
			continue
		}
		if len(recipient.PreferredCategories) > 0 && !slices.Contains(recipient.PreferredCategories, event.Category) {
			continue
		}
		if !f.withinRadius(recipient, event) {
			continue
		}
		eligible = append(eligible, event)
	}

	return eligible
}

// InQuietHours reports whether at falls inside the recipient's quiet window, in the recipient's zone.
func (f *Eligibility) InQuietHours(recipient *entity.Recipient, at time.Time) bool {
	if recipient.QuietHours == nil {
		return false
	}

	return recipient.QuietHours.Contains(entity.TimeOfDayOf(at.In(f.location(recipient))))
}

func (f *Eligibility) withinRadius(recipient *entity.Recipient, event *entity.Event) bool {
	if recipient.Latitude == nil || recipient.Longitude == nil {
		return true
	}

	radius := recipient.RadiusMeters
	if radius <= 0 {
		radius = f.DefaultRadius
	}
	if radius <= 0 {
		return true
	}

	from := orb.Point{*recipient.Longitude, *recipient.Latitude}
	to := orb.Point{event.Longitude, event.Latitude}

	return geo.Distance(from, to) <= radius
}

func (f *Eligibility) location(recipient *entity.Recipient) *time.Location {
	if recipient.Timezone != "" {
		if loc, err := time.LoadLocation(recipient.Timezone); err == nil {
			return loc
		}
	}

	return f.DefaultLocation
}
