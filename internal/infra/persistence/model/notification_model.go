package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationRecordModel is the GORM-specific struct for the 'notification_records' table.
// One row per (recipient, event, type) confirmed send.
type NotificationRecordModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notification_records_key"`
	EventID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notification_records_key;index"`
	NotificationType string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_notification_records_key"`
	SentAt           time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationRecordModel) TableName() string {
	return "notification_records"
}

// All returns every model managed by the schema migration.
func All() []any {
	return []any{
		&EventModel{},
		&RecipientModel{},
		&NotificationRecordModel{},
	}
}
