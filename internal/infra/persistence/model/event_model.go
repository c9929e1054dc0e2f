// Package model contains the GORM structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel is the GORM-specific struct for the 'events' table.
// Two partial unique indexes enforce event identity: (source, source_id) for events
// carrying a source ID, and (source, title, start_day) for those without one.
type EventModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Source      string     `gorm:"type:varchar(32);not null;uniqueIndex:idx_events_source_id,where:source_id IS NOT NULL;uniqueIndex:idx_events_fallback_key,where:source_id IS NULL"`
	SourceID    *string    `gorm:"type:varchar(255);uniqueIndex:idx_events_source_id,where:source_id IS NOT NULL"`
	Title       string     `gorm:"type:varchar(500);not null;uniqueIndex:idx_events_fallback_key,where:source_id IS NULL"`
	StartDay    string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_events_fallback_key,where:source_id IS NULL"`
	Category    string     `gorm:"type:varchar(32);not null"`
	Description string     `gorm:"type:text"`
	Venue       string     `gorm:"type:varchar(500)"`
	Price       string     `gorm:"type:varchar(255)"`
	SourceURL   string     `gorm:"type:varchar(1000)"`
	ImageURL    string     `gorm:"type:varchar(1000)"`
	Latitude    float64    `gorm:"not null"`
	Longitude   float64    `gorm:"not null"`
	StartTime   time.Time  `gorm:"not null;index"`
	EndTime     *time.Time `gorm:"index"`
	City        string     `gorm:"type:varchar(64);not null;index"`
	IsArchived  bool       `gorm:"not null;index"`
	ArchivedAt  *time.Time
	LastUpdated time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
