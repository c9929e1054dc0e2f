package impl

import (
	"context"
	"log/slog"
	"sync"
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
	"golang.org/x/sync/errgroup"
)

type dispatchOutcome int

const (
	outcomeSent dispatchOutcome = iota
	outcomeQuiet
	outcomeNoMatch
	outcomeDeactivated
	outcomeFailed
)

type dispatchService struct {
	eventRepo        repository.EventRepository
	recipientRepo    repository.RecipientRepository
	notificationRepo repository.NotificationRepository
	sender           *sender
	eligibility      *Eligibility
	locks            *RecipientLocks
	metrics          service.MetricsRecorder
	config           *config.DispatchConfig
	logger           *slog.Logger
	now              func() time.Time
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
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

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(params DispatchServiceParams) (usecase.DispatchUsecase, error) {
	location, err := time.LoadLocation(params.Config.Notification.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid notification timezone %q", params.Config.Notification.Timezone)
	}

	return &dispatchService{
		eventRepo:        params.EventRepo,
		recipientRepo:    params.RecipientRepo,
		notificationRepo: params.NotificationRepo,
		sender:           newSender(params.Channels, params.Config.Dispatch),
		eligibility:      NewEligibility(params.Config.Notification.DefaultRadius, location),
		locks:            params.Locks,
		metrics:          params.Metrics,
		config:           params.Config.Dispatch,
		logger:           params.Logger,
		now:              time.Now,
	}, nil
}

// NotifyNewEvents sends each eligible recipient one message covering the given events
func (s *dispatchService) NotifyNewEvents(ctx context.Context, eventIDs []uuid.UUID) (*entity.DispatchReport, error) {
	report := &entity.DispatchReport{}
	if len(eventIDs) == 0 {
		return report, nil
	}

	events, err := s.eventRepo.FindByIDs(ctx, uniqueIDs(eventIDs))
	if err != nil {
		return report, errors.Wrap(err, "failed to load events")
	}
	events = activeEvents(events)
	report.Events = len(events)
	if len(events) == 0 {
		return report, nil
	}

	recipients, err := s.recipientRepo.FindNewEventSubscribers(ctx)
	if err != nil {
		return report, errors.Wrap(err, "failed to load recipients")
	}
	report.Recipients = len(recipients)

	ids := make([]uuid.UUID, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
	}

	var mu sync.Mutex
	at := s.now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.config.Workers, 1))
	for _, recipient := range recipients {
		g.Go(func() error {
			outcome, notified, err := s.notifyRecipient(gctx, recipient, events, ids, at)

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case outcomeSent:
				report.Messages++
				report.Notified += notified
			case outcomeQuiet:
				report.SkippedQuiet++
			case outcomeNoMatch:
				report.NoMatches++
			case outcomeDeactivated:
				report.Deactivated++
			case outcomeFailed:
				report.Failed++
			}

			return err
		})
	}

	err = g.Wait()

	s.logger.Info("Dispatch pass finished",
		slog.Int("events", report.Events),
		slog.Int("recipients", report.Recipients),
		slog.Int("messages", report.Messages),
		slog.Int("notified", report.Notified),
		slog.Int("skippedQuiet", report.SkippedQuiet),
		slog.Int("deactivated", report.Deactivated),
		slog.Int("failed", report.Failed),
	)

	return report, err
}

// notifyRecipient handles one recipient. Only storage loss is returned as an error;
// every other failure is logged and reported through the outcome.
func (s *dispatchService) notifyRecipient(ctx context.Context, recipient *entity.Recipient, events []*entity.Event, ids []uuid.UUID, at time.Time) (dispatchOutcome, int, error) {
	if s.eligibility.InQuietHours(recipient, at) {
		return outcomeQuiet, 0, nil
	}

	unlock := s.locks.Lock(recipient.ID)
	defer unlock()

	logger := s.logger.With(slog.String(logs.KeyRecipientID, recipient.ID.String()))

	notified, err := s.notificationRepo.FindNotifiedEventIDs(ctx, recipient.ID, entity.NotificationTypeNewEvent, ids)
	if err != nil {
		if errors.Is(err, repository.ErrStorageUnavailable) {
			return outcomeFailed, 0, err
		}
		logger.Error("Failed to read notification history", slog.Any("error", err))

		return outcomeFailed, 0, nil
	}

	eligible := s.eligibility.Events(recipient, events, notified)
	if len(eligible) == 0 {
		return outcomeNoMatch, 0, nil
	}

	text := formatNewEvents(eligible, s.config.MaxListed, s.eligibility.location(recipient))
	if err := s.sender.send(ctx, recipient, text); err != nil {
		return handleSendFailure(ctx, s.recipientRepo, s.metrics, logger, recipient, entity.NotificationTypeNewEvent, err)
	}
	s.metrics.Notification(entity.NotificationTypeNewEvent, service.ResultSent)

	sentAt := s.now()
	records := make([]*entity.NotificationRecord, 0, len(eligible))
	for _, event := range eligible {
		records = append(records, &entity.NotificationRecord{
			ID:          uuid.New(),
			RecipientID: recipient.ID,
			EventID:     event.ID,
			Type:        entity.NotificationTypeNewEvent,
			SentAt:      sentAt,
		})
	}

	if err := s.notificationRepo.RecordNotifications(ctx, records); err != nil {
		logger.Error("Message sent but history not recorded",
			slog.Int("events", len(records)),
			slog.Any("error", err),
		)
		if errors.Is(err, repository.ErrStorageUnavailable) {
			return outcomeSent, 0, err
		}

		return outcomeSent, 0, nil
	}

	return outcomeSent, len(records), nil
}

// handleSendFailure deactivates recipients on permanent failures and logs transient ones.
func handleSendFailure(
	ctx context.Context,
	recipientRepo repository.RecipientRepository,
	metrics service.MetricsRecorder,
	logger *slog.Logger,
	recipient *entity.Recipient,
	notificationType entity.NotificationType,
	sendErr error,
) (dispatchOutcome, int, error) {
	if !service.IsPermanentDelivery(sendErr) {
		metrics.Notification(notificationType, service.ResultTransient)
		logger.Warn("Delivery failed, recipient will be retried on a later pass",
			slog.String("type", string(notificationType)),
			slog.Any("error", sendErr),
		)

		return outcomeFailed, 0, nil
	}

	metrics.Notification(notificationType, service.ResultPermanent)
	logger.Warn("Recipient unreachable, deactivating",
		slog.String("type", string(notificationType)),
		slog.Any("error", sendErr),
	)

	if err := recipientRepo.Deactivate(ctx, recipient.ID); err != nil {
		logger.Error("Failed to deactivate recipient", slog.Any("error", err))
		if errors.Is(err, repository.ErrStorageUnavailable) {
			return outcomeFailed, 0, err
		}

		return outcomeFailed, 0, nil
	}

	return outcomeDeactivated, 0, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}

func activeEvents(events []*entity.Event) []*entity.Event {
	active := make([]*entity.Event, 0, len(events))
	for _, event := range events {
		if !event.IsArchived {
			active = append(active, event)
		}
	}

	return active
}
