package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Channel identifies the delivery channel a recipient's address belongs to.
type Channel string

const (
	ChannelTelegram Channel = "telegram"
	ChannelFCM      Channel = "fcm"
)

// Recipient represents a subscriber who may be alerted about new events.
type Recipient struct {
	ID                   uuid.UUID   `json:"id"`                    // The Global Unique Identifier (GUID) for the recipient.
	AccountID            string      `json:"account_id"`            // Stable external account ID (e.g. Telegram user ID).
	Channel              Channel     `json:"channel"`               // Delivery channel for Address.
	Address              string      `json:"address"`               // Channel-specific address (chat ID, FCM token).
	IsActive             bool        `json:"is_active"`             // Cleared when the channel reports the recipient is gone.
	NotificationsEnabled bool        `json:"notifications_enabled"` // Master switch for all pushes.
	NotifyOnImport       bool        `json:"notify_on_import"`      // Opt-in for new-event pushes.
	Latitude             *float64    `json:"latitude"`              // Optional location.
	Longitude            *float64    `json:"longitude"`             // Optional location.
	RadiusMeters         float64     `json:"radius_meters"`         // Notification radius around the location.
	PreferredCity        string      `json:"preferred_city"`        // Optional city filter.
	PreferredCategories  []Category  `json:"preferred_categories"`  // Optional category filter; empty means all.
	QuietHours           *QuietHours `json:"quiet_hours"`           // Optional daily window without new-event pushes.
	Timezone             string      `json:"timezone"`              // IANA zone for QuietHours; empty uses the service default.
	CreatedAt            time.Time   `json:"created_at"`            // Timestamp of when this record was created.
	UpdatedAt            time.Time   `json:"updated_at"`            // Timestamp of the last modification.
}

// HasLocation reports whether the recipient has both coordinates and a positive radius.
func (r *Recipient) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil && r.RadiusMeters > 0
}

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid time of day %q", s)
	}

	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// TimeOfDayOf returns the wall-clock time of t in its own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// QuietHours is a daily window [Start, End) during which new-event pushes are held back.
// When Start > End the window wraps past midnight. Start == End is an empty window.
type QuietHours struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Contains reports whether the wall-clock time t falls inside the window.
func (q QuietHours) Contains(t TimeOfDay) bool {
	if q.Start <= q.End {
		return q.Start <= t && t < q.End
	}

	return t >= q.Start || t < q.End
}
