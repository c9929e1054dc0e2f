package impl

import (
	"fmt"
	"strings"
	"time"

	"eventradar/internal/domain/entity"
)

const (
	startLayout     = "02.01.2006 15:04"
	timeOnlyLayout  = "15:04"
	dateLayout      = "02.01.2006"
	descriptionCut  = 150
	defaultMaxShown = 5
)

// formatNewEvents renders one message for a recipient's eligible events.
// A single event gets a detailed card; several get a numbered list capped at maxListed.
func formatNewEvents(events []*entity.Event, maxListed int, loc *time.Location) string {
	if len(events) == 0 {
		return ""
	}
	if maxListed <= 0 {
		maxListed = defaultMaxShown
	}

	var b strings.Builder
	if len(events) == 1 {
		b.WriteString("New event near you!\n\n")
		writeEventCard(&b, events[0], loc)

		return strings.TrimRight(b.String(), "\n")
	}

	fmt.Fprintf(&b, "%d new events near you!\n\n", len(events))
	writeEventList(&b, events, maxListed, loc, startLayout)

	return strings.TrimRight(b.String(), "\n")
}

// formatDigest renders the daily summary of events starting on day.
func formatDigest(day time.Time, events []*entity.Event, maxListed int, loc *time.Location) string {
	if maxListed <= 0 {
		maxListed = defaultMaxShown
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Events today (%s)\n\n", day.In(loc).Format(dateLayout))
	writeEventList(&b, events, maxListed, loc, timeOnlyLayout)

	return strings.TrimRight(b.String(), "\n")
}

func writeEventCard(b *strings.Builder, event *entity.Event, loc *time.Location) {
	b.WriteString(event.Title)
	b.WriteString("\n")
	if event.Venue != "" {
		fmt.Fprintf(b, "Venue: %s\n", event.Venue)
	}
	fmt.Fprintf(b, "When: %s", event.StartTime.In(loc).Format(startLayout))
	if event.EndTime != nil {
		fmt.Fprintf(b, " - %s", event.EndTime.In(loc).Format(timeOnlyLayout))
	}
	b.WriteString("\n")
	if event.Price != "" {
		fmt.Fprintf(b, "Price: %s\n", event.Price)
	}
	if event.Description != "" {
		fmt.Fprintf(b, "\n%s\n", truncateRunes(event.Description, descriptionCut))
	}
	if event.SourceURL != "" {
		fmt.Fprintf(b, "\n%s\n", event.SourceURL)
	}
}

func writeEventList(b *strings.Builder, events []*entity.Event, maxListed int, loc *time.Location, layout string) {
	for i, event := range events {
		if i == maxListed {
			fmt.Fprintf(b, "\n...and %d more", len(events)-maxListed)

			break
		}
		fmt.Fprintf(b, "%d. %s", i+1, event.Title)
		if event.Venue != "" {
			fmt.Fprintf(b, " (%s)", event.Venue)
		}
		fmt.Fprintf(b, "\n   %s\n", event.StartTime.In(loc).Format(layout))
	}
}

// truncateRunes cuts s to at most n runes, marking the cut with an ellipsis.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n]) + "..."
}
