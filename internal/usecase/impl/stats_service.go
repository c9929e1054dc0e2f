package impl

import (
	"context"

	"eventradar/internal/domain/entity"
	"eventradar/internal/domain/repository"
	"eventradar/internal/usecase"

	"github.com/pkg/errors"
)

type statsService struct {
	eventRepo     repository.EventRepository
	recipientRepo repository.RecipientRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService(eventRepo repository.EventRepository, recipientRepo repository.RecipientRepository) usecase.StatsUsecase {
	return &statsService{
		eventRepo:     eventRepo,
		recipientRepo: recipientRepo,
	}
}

// Snapshot counts events and recipients
func (s *statsService) Snapshot(ctx context.Context) (*entity.StoreStats, error) {
	totalEvents, validEvents, err := s.eventRepo.CountEvents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count events")
	}

	totalRecipients, activeRecipients, err := s.recipientRepo.CountRecipients(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count recipients")
	}

	return &entity.StoreStats{
		TotalEvents:      totalEvents,
		ValidEvents:      validEvents,
		TotalRecipients:  totalRecipients,
		ActiveRecipients: activeRecipients,
	}, nil
}
