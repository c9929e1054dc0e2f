package service

import (
	"time"

	"eventradar/internal/domain/entity"
)

// Outcome labels shared by metrics.
const (
	ResultCreated   = "created"
	ResultUpdated   = "updated"
	ResultError     = "error"
	ResultNoCoords  = "skipped_no_coords"
	ResultSent      = "sent"
	ResultPermanent = "permanent_failure"
	ResultTransient = "transient_failure"
	ResultSuccess   = "success"
	ResultSkipped   = "skipped"
)

// MetricsRecorder collects pipeline counters.
type MetricsRecorder interface {
	// ImportedEvent counts one candidate event by outcome
	ImportedEvent(source entity.Source, result string)

	// Notification counts one recipient send by outcome
	Notification(notificationType entity.NotificationType, result string)

	// JobRun counts one scheduled job run and its duration
	JobRun(job, result string, duration time.Duration)
}
