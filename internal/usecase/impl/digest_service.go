package impl

import (
	"context"
	"log/slog"
	"time"

	"eventradar/config"
	"eventradar/internal/domain/entity"
	"eventradar/internal/domain/repository"
	"eventradar/internal/domain/service"
	logs "eventradar/internal/infra/log"
	"eventradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type digestService struct {
	eventRepo        repository.EventRepository
	recipientRepo    repository.RecipientRepository
	notificationRepo repository.NotificationRepository
	sender           *sender
	locks            *RecipientLocks
	metrics          service.MetricsRecorder
	maxListed        int
	location         *time.Location
	logger           *slog.Logger
}

// DigestServiceParams holds dependencies for DigestService, injected by Fx.
type DigestServiceParams struct {
	fx.In

	EventRepo        repository.EventRepository
	RecipientRepo    repository.RecipientRepository
	NotificationRepo repository.NotificationRepository
	Channels         []service.DeliveryChannel `group:"channels"`
	Locks            *RecipientLocks
	Metrics          service.MetricsRecorder
	Config           *config.Config
	Logger           *slog.Logger
}

// NewDigestService creates a new digest service instance
func NewDigestService(params DigestServiceParams) (usecase.DigestUsecase, error) {
	location, err := time.LoadLocation(params.Config.Notification.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid notification timezone %q", params.Config.Notification.Timezone)
	}

	return &digestService{
		eventRepo:        params.EventRepo,
		recipientRepo:    params.RecipientRepo,
		notificationRepo: params.NotificationRepo,
		sender:           newSender(params.Channels, params.Config.Dispatch),
		locks:            params.Locks,
		metrics:          params.Metrics,
		maxListed:        params.Config.Digest.MaxListed,
		location:         location,
		logger:           params.Logger,
	}, nil
}

// SendDailyDigest sends the events starting today to every digest subscriber.
// Digest history is recorded separately and never consulted, so new-event pushes and digests do not suppress each other.
func (s *digestService) SendDailyDigest(ctx context.Context, now time.Time) (*entity.DigestReport, error) {
	local := now.In(s.location)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	report := &entity.DigestReport{Day: dayStart.Format(time.DateOnly)}

	events, err := s.eventRepo.FindStartingBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return report, errors.Wrap(err, "failed to load today's events")
	}
	report.Events = len(events)
	if len(events) == 0 {
		s.logger.Info("No events today, skipping digest", slog.String("day", report.Day))

		return report, nil
	}

	recipients, err := s.recipientRepo.FindDigestSubscribers(ctx)
	if err != nil {
		return report, errors.Wrap(err, "failed to load recipients")
	}
	report.Recipients = len(recipients)

	text := formatDigest(dayStart, events, s.maxListed, s.location)

	for _, recipient := range recipients {
		outcome, err := s.sendDigest(ctx, recipient, events, text, now)
		switch outcome {
		case outcomeSent:
			report.Sent++
		case outcomeDeactivated:
			report.Deactivated++
		case outcomeFailed:
			report.Failed++
		}
		if err != nil {
			return report, err
		}
	}

	s.logger.Info("Daily digest finished",
		slog.String("day", report.Day),
		slog.Int("events", report.Events),
		slog.Int("recipients", report.Recipients),
		slog.Int("sent", report.Sent),
		slog.Int("deactivated", report.Deactivated),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}

func (s *digestService) sendDigest(ctx context.Context, recipient *entity.Recipient, events []*entity.Event, text string, now time.Time) (dispatchOutcome, error) {
	unlock := s.locks.Lock(recipient.ID)
	defer unlock()

	logger := s.logger.With(slog.String(logs.KeyRecipientID, recipient.ID.String()))

	if err := s.sender.send(ctx, recipient, text); err != nil {
		outcome, _, err := handleSendFailure(ctx, s.recipientRepo, s.metrics, logger, recipient, entity.NotificationTypeDailyDigest, err)

		return outcome, err
	}
	s.metrics.Notification(entity.NotificationTypeDailyDigest, service.ResultSent)

	records := make([]*entity.NotificationRecord, 0, len(events))
	for _, event := range events {
		records = append(records, &entity.NotificationRecord{
			ID:          uuid.New(),
			RecipientID: recipient.ID,
			EventID:     event.ID,
			Type:        entity.NotificationTypeDailyDigest,
			SentAt:      now,
		})
	}

	if err := s.notificationRepo.RecordNotifications(ctx, records); err != nil {
		logger.Error("Digest sent but history not recorded", slog.Any("error", err))
		if errors.Is(err, repository.ErrStorageUnavailable) {
			return outcomeSent, err
		}
	}

	return outcomeSent, nil
}
