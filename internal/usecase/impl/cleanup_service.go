package impl

import (
	"context"
	"log/slog"
	"time"

	"eventradar/config"
	"eventradar/internal/domain/entity"
	"eventradar/internal/domain/repository"
	"eventradar/internal/usecase"

	"github.com/pkg/errors"
)

type cleanupService struct {
	eventRepo repository.EventRepository
	config    *config.RetentionConfig
	logger    *slog.Logger
}

// NewCleanupService creates a new cleanup service instance
func NewCleanupService(eventRepo repository.EventRepository, cfg *config.Config, logger *slog.Logger) usecase.CleanupUsecase {
	return &cleanupService{
		eventRepo: eventRepo,
		config:    cfg.Retention,
		logger:    logger,
	}
}

// Cleanup archives events that ended before the archive window, then deletes
// archived events that ended before the delete window. Each step commits on its own.
func (s *cleanupService) Cleanup(ctx context.Context, now time.Time) (*entity.CleanupReport, error) {
	report := &entity.CleanupReport{}

	archived, err := s.eventRepo.ArchiveEndedBefore(ctx, now.Add(-s.config.ArchiveAfter), now)
	if err != nil {
		return report, errors.Wrap(err, "failed to archive events")
	}
	report.Archived = archived

	deleted, err := s.eventRepo.DeleteArchivedEndedBefore(ctx, now.Add(-s.config.DeleteAfter))
	if err != nil {
		return report, errors.Wrap(err, "failed to delete archived events")
	}
	report.Deleted = deleted

	s.logger.Info("Cleanup finished",
		slog.Int64("archived", report.Archived),
		slog.Int64("deleted", report.Deleted),
	)

	return report, nil
}
