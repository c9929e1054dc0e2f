// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrValidation is returned for a candidate event that cannot be stored.
	ErrValidation = errors.New("invalid event")
	// ErrMissingCoordinates is returned for a candidate event without a location.
	ErrMissingCoordinates = errors.New("event has no coordinates")
)

// Source identifies where an event was imported from.
type Source string

const (
	SourceKudaGo       Source = "kudago"
	SourceYandexAfisha Source = "yandex_afisha"
	SourceManual       Source = "manual"
)

// IsValid reports whether s is a known source.
func (s Source) IsValid() bool {
	switch s {
	case SourceKudaGo, SourceYandexAfisha, SourceManual:
		return true
	}

	return false
}

// Category is the closed set of event kinds recipients can filter on.
type Category string

const (
	CategoryConcert    Category = "concert"
	CategoryTheater    Category = "theater"
	CategoryExhibition Category = "exhibition"
	CategorySport      Category = "sport"
	CategoryFestival   Category = "festival"
	CategoryRepair     Category = "repair"
	CategoryAccident   Category = "accident"
	CategoryCityEvent  Category = "city_event"
	CategoryOther      Category = "other"
)

// ParseCategory maps a raw value onto the closed category set. Unknown values become CategoryOther.
func ParseCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	switch c {
	case CategoryConcert, CategoryTheater, CategoryExhibition, CategorySport,
		CategoryFestival, CategoryRepair, CategoryAccident, CategoryCityEvent:
		return c
	}

	return CategoryOther
}

// Event represents a time-and-place-tagged happening imported from a source.
type Event struct {
	ID          uuid.UUID  `json:"id"`           // The Global Unique Identifier (GUID) for the event.
	Source      Source     `json:"source"`       // The source the event was imported from.
	SourceID    *string    `json:"source_id"`    // Stable source-scoped identifier, when the source provides one.
	Title       string     `json:"title"`        // The event title.
	Category    Category   `json:"category"`     // The event category.
	Description string     `json:"description"`  // Free-form description.
	Venue       string     `json:"venue"`        // Venue name.
	Price       string     `json:"price"`        // Price text as published by the source.
	SourceURL   string     `json:"source_url"`   // Link to the event page at the source.
	ImageURL    string     `json:"image_url"`    // Link to the event image.
	Latitude    float64    `json:"latitude"`     // The geographic latitude of the event.
	Longitude   float64    `json:"longitude"`    // The geographic longitude of the event.
	StartTime   time.Time  `json:"start_time"`   // When the event starts.
	EndTime     *time.Time `json:"end_time"`     // When the event ends, if known.
	StartDay    string     `json:"start_day"`    // Calendar date of StartTime (YYYY-MM-DD) used for fallback dedup.
	City        string     `json:"city"`         // City slug.
	IsArchived  bool       `json:"is_archived"`  // Set by the cleanup pass once the event is over.
	ArchivedAt  *time.Time `json:"archived_at"`  // When the event was archived.
	LastUpdated time.Time  `json:"last_updated"` // Last time an import refreshed this event.
	CreatedAt   time.Time  `json:"created_at"`   // Timestamp of when this record was created.
}

// EffectiveEnd returns EndTime, or StartTime for events without an end.
func (e *Event) EffectiveEnd() time.Time {
	if e.EndTime != nil {
		return *e.EndTime
	}

	return e.StartTime
}

// RawEvent is a candidate event as returned by a source adapter, before validation.
type RawEvent struct {
	SourceID    *string
	Title       string
	Category    string
	Description string
	Venue       string
	Price       string
	Latitude    *float64
	Longitude   *float64
	StartTime   time.Time
	EndTime     *time.Time
	SourceURL   string
	ImageURL    string
}

// Validate checks the fields required to store the event.
func (r *RawEvent) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.Wrap(ErrValidation, "missing title")
	}
	if r.StartTime.IsZero() {
		return errors.Wrap(ErrValidation, "missing start time")
	}
	if r.Latitude == nil || r.Longitude == nil {
		return ErrMissingCoordinates
	}
	if *r.Latitude < -90 || *r.Latitude > 90 || *r.Longitude < -180 || *r.Longitude > 180 {
		return errors.Wrapf(ErrValidation, "coordinates out of range: %f,%f", *r.Latitude, *r.Longitude)
	}

	return nil
}

// ImportStats summarises one import run for a (source, city) pair or an aggregate of them.
type ImportStats struct {
	Source          Source      `json:"source,omitempty"`
	City            string      `json:"city,omitempty"`
	Total           int         `json:"total"`
	Created         int         `json:"created"`
	Updated         int         `json:"updated"`
	Errors          int         `json:"errors"`
	SkippedNoCoords int         `json:"skipped_no_coords"`
	NewEventIDs     []uuid.UUID `json:"new_event_ids"`
}

// Merge adds other's counters and new IDs into s.
func (s *ImportStats) Merge(other *ImportStats) {
	if other == nil {
		return
	}
	s.Total += other.Total
	s.Created += other.Created
	s.Updated += other.Updated
	s.Errors += other.Errors
	s.SkippedNoCoords += other.SkippedNoCoords
	s.NewEventIDs = append(s.NewEventIDs, other.NewEventIDs...)
}
