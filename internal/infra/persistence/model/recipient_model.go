package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipientModel is the GORM-specific struct for the 'recipients' table.
// Quiet hours are stored as "HH:MM" strings; both are set or both are null.
type RecipientModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID            string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Channel              string    `gorm:"type:varchar(32);not null"`
	Address              string    `gorm:"type:varchar(512);not null"`
	IsActive             bool      `gorm:"not null;index"`
	NotificationsEnabled bool      `gorm:"not null"`
	NotifyOnImport       bool      `gorm:"not null"`
	Latitude             *float64
	Longitude            *float64
	RadiusMeters         float64  `gorm:"not null"`
	PreferredCity        string   `gorm:"type:varchar(64)"`
	PreferredCategories  []string `gorm:"serializer:json"`
	QuietStart           *string  `gorm:"type:varchar(5)"`
	QuietEnd             *string  `gorm:"type:varchar(5)"`
	Timezone             string   `gorm:"type:varchar(64)"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipientModel) TableName() string {
	return "recipients"
}
