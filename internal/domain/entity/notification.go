package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType separates the new-event and digest pipelines so they never suppress each other.
type NotificationType string

const (
	NotificationTypeNewEvent    NotificationType = "new_event"
	NotificationTypeDailyDigest NotificationType = "daily_digest"
)

// NotificationRecord states that a recipient has been told about an event.
// (RecipientID, EventID, Type) is unique.
type NotificationRecord struct {
	ID          uuid.UUID        `json:"id"`           // The Global Unique Identifier (GUID) for the record.
	RecipientID uuid.UUID        `json:"recipient_id"` // The recipient that was notified.
	EventID     uuid.UUID        `json:"event_id"`     // The event the recipient was notified about.
	Type        NotificationType `json:"type"`         // Which pipeline sent it.
	SentAt      time.Time        `json:"sent_at"`      // Timestamp of the confirmed send.
}

// DispatchReport summarises one new-event dispatch pass.
type DispatchReport struct {
	Events       int `json:"events"`        // Events loaded from the requested IDs.
	Recipients   int `json:"recipients"`    // Subscribers evaluated.
	Messages     int `json:"messages"`      // Messages delivered.
	Notified     int `json:"notified"`      // (recipient, event) pairs recorded.
	SkippedQuiet int `json:"skipped_quiet"` // Recipients skipped for quiet hours.
	NoMatches    int `json:"no_matches"`    // Recipients with nothing eligible.
	Deactivated  int `json:"deactivated"`   // Recipients deactivated after a permanent failure.
	Failed       int `json:"failed"`        // Recipients whose send failed transiently.
}

// DigestReport summarises one daily digest pass.
type DigestReport struct {
	Day         string `json:"day"`
	Events      int    `json:"events"`
	Recipients  int    `json:"recipients"`
	Sent        int    `json:"sent"`
	Deactivated int    `json:"deactivated"`
	Failed      int    `json:"failed"`
}

// CleanupReport summarises one retention pass over the event store.
type CleanupReport struct {
	Archived int64 `json:"archived"`
	Deleted  int64 `json:"deleted"`
}

// StoreStats is the health snapshot of the event store and recipient directory.
type StoreStats struct {
	TotalEvents      int64 `json:"total_events"`
	ValidEvents      int64 `json:"valid_events"`
	TotalRecipients  int64 `json:"total_recipients"`
	ActiveRecipients int64 `json:"active_recipients"`
}
