package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventradar/config"
	"eventradar/internal/domain/entity"
	domainerrors "eventradar/internal/domain/errors"
	"eventradar/internal/domain/repository"
	"eventradar/internal/domain/service"
	logs "eventradar/internal/infra/log"
	"eventradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type importService struct {
	eventRepo repository.EventRepository
	sources   map[entity.Source]service.EventSource
	enabled   []entity.Source
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	config    *config.ImporterConfig
	location  *time.Location
	logger    *slog.Logger
	now       func() time.Time
}

// ImportServiceParams holds dependencies for ImportService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	Sources   []service.EventSource `group:"sources"`
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewImportService creates a new import service instance
func NewImportService(params ImportServiceParams) (usecase.ImportUsecase, error) {
	location, err := time.LoadLocation(params.Config.Importer.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid importer timezone %q", params.Config.Importer.Timezone)
	}

	sources := make(map[entity.Source]service.EventSource, len(params.Sources))
	for _, src := range params.Sources {
		if src != nil {
			sources[src.Source()] = src
		}
	}

	enabled := make([]entity.Source, 0, len(params.Config.Importer.Sources))
	for _, name := range params.Config.Importer.Sources {
		source := entity.Source(name)
		if _, ok := sources[source]; !ok {
			params.Logger.Warn("Configured source has no adapter, skipping", slog.String(logs.KeySource, name))

			continue
		}
		enabled = append(enabled, source)
	}

	return &importService{
		eventRepo: params.EventRepo,
		sources:   sources,
		enabled:   enabled,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		config:    params.Config.Importer,
		location:  location,
		logger:    params.Logger,
		now:       time.Now,
	}, nil
}

// RunImport imports source for city with the configured window and limit
func (s *importService) RunImport(ctx context.Context, source entity.Source, city string) (*entity.ImportStats, error) {
	return s.Import(ctx, source, city, s.config.WindowDays, s.config.Limit)
}

// ImportAll imports every configured city from every enabled source
func (s *importService) ImportAll(ctx context.Context) (*entity.ImportStats, error) {
	total := &entity.ImportStats{}

	for _, city := range s.config.Cities {
		for _, source := range s.enabled {
			stats, err := s.RunImport(ctx, source, city)
			total.Merge(stats)
			if err == nil {
				continue
			}
			if errors.Is(err, repository.ErrStorageUnavailable) || ctx.Err() != nil {
				return total, err
			}

			s.logger.Error("Import failed for source, continuing",
				slog.String(logs.KeySource, string(source)),
				slog.String(logs.KeyCity, city),
				slog.Any("error", err),
			)
		}
	}

	s.logger.Info("Import pass finished",
		slog.Int("total", total.Total),
		slog.Int("created", total.Created),
		slog.Int("updated", total.Updated),
		slog.Int("errors", total.Errors),
		slog.Int("skippedNoCoords", total.SkippedNoCoords),
	)

	return total, nil
}

// Import fetches events for city from source and upserts them.
// A non-positive window or limit falls back to the configured value.
func (s *importService) Import(ctx context.Context, source entity.Source, city string, windowDays, limit int) (*entity.ImportStats, error) {
	src, ok := s.sources[source]
	if !ok {
		return nil, domainerrors.ErrUnknownSource.WrapMessage(string(source))
	}

	if windowDays <= 0 {
		windowDays = s.config.WindowDays
	}
	if limit <= 0 {
		limit = s.config.Limit
	}

	raws, err := src.Fetch(ctx, city, windowDays, limit)
	if err != nil {
		if !errors.Is(err, service.ErrSourceUnavailable) {
			err = fmt.Errorf("%w: %w", service.ErrSourceUnavailable, err)
		}

		return nil, errors.WithMessagef(err, "fetch %s events for %s", source, city)
	}
	if len(raws) > limit {
		raws = raws[:limit]
	}

	stats := &entity.ImportStats{Source: source, City: city, Total: len(raws)}
	for _, raw := range raws {
		created, id, err := s.upsert(ctx, source, city, raw)
		switch {
		case err == nil && created:
			stats.Created++
			stats.NewEventIDs = append(stats.NewEventIDs, id)
			s.metrics.ImportedEvent(source, service.ResultCreated)
		case err == nil:
			stats.Updated++
			s.metrics.ImportedEvent(source, service.ResultUpdated)
		case errors.Is(err, entity.ErrMissingCoordinates):
			stats.SkippedNoCoords++
			s.metrics.ImportedEvent(source, service.ResultNoCoords)
		case errors.Is(err, repository.ErrStorageUnavailable):
			return stats, err
		default:
			stats.Errors++
			s.metrics.ImportedEvent(source, service.ResultError)
			s.logger.Warn("Skipping candidate event",
				slog.String(logs.KeySource, string(source)),
				slog.String(logs.KeyCity, city),
				slog.String("title", raw.Title),
				slog.Any("error", err),
			)
		}
	}

	s.announce(ctx, stats)

	s.logger.Info("Import finished",
		slog.String(logs.KeySource, string(source)),
		slog.String(logs.KeyCity, city),
		slog.Int("total", stats.Total),
		slog.Int("created", stats.Created),
		slog.Int("updated", stats.Updated),
		slog.Int("errors", stats.Errors),
		slog.Int("skippedNoCoords", stats.SkippedNoCoords),
	)

	return stats, nil
}

// upsert stores one candidate and reports whether it was newly created.
func (s *importService) upsert(ctx context.Context, source entity.Source, city string, raw *entity.RawEvent) (bool, uuid.UUID, error) {
	if err := raw.Validate(); err != nil {
		return false, uuid.Nil, err
	}

	event := s.normalize(source, city, raw)

	existing, err := s.findExisting(ctx, event)
	if err == nil {
		return false, existing.ID, s.refresh(ctx, existing.ID, event)
	}
	if !errors.Is(err, repository.ErrEventNotFound) {
		return false, uuid.Nil, err
	}

	err = s.eventRepo.CreateEvent(ctx, event)
	if err == nil {
		return true, event.ID, nil
	}
	if !errors.Is(err, repository.ErrDuplicateEvent) {
		return false, uuid.Nil, err
	}

	// Lost an insert race against another importer, so the row exists now
	existing, err = s.findExisting(ctx, event)
	if err != nil {
		return false, uuid.Nil, err
	}

	return false, existing.ID, s.refresh(ctx, existing.ID, event)
}

func (s *importService) findExisting(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	if event.SourceID != nil {
		return s.eventRepo.FindBySourceID(ctx, event.Source, *event.SourceID)
	}

	return s.eventRepo.FindByFallbackKey(ctx, event.Source, event.Title, event.StartDay)
}

func (s *importService) refresh(ctx context.Context, id uuid.UUID, event *entity.Event) error {
	return s.eventRepo.RefreshEvent(ctx, id, repository.EventRefresh{
		Description: event.Description,
		ImageURL:    event.ImageURL,
		Price:       event.Price,
		LastUpdated: event.LastUpdated,
	})
}

func (s *importService) normalize(source entity.Source, city string, raw *entity.RawEvent) *entity.Event {
	var sourceID *string
	if raw.SourceID != nil && strings.TrimSpace(*raw.SourceID) != "" {
		id := strings.TrimSpace(*raw.SourceID)
		sourceID = &id
	}

	now := s.now().UTC()

	return &entity.Event{
		ID:          uuid.New(),
		Source:      source,
		SourceID:    sourceID,
		Title:       strings.TrimSpace(raw.Title),
		Category:    entity.ParseCategory(raw.Category),
		Description: raw.Description,
		Venue:       raw.Venue,
		Price:       raw.Price,
		SourceURL:   raw.SourceURL,
		ImageURL:    raw.ImageURL,
		Latitude:    *raw.Latitude,
		Longitude:   *raw.Longitude,
		StartTime:   raw.StartTime.UTC(),
		EndTime:     raw.EndTime,
		StartDay:    raw.StartTime.In(s.location).Format(time.DateOnly),
		City:        city,
		LastUpdated: now,
		CreatedAt:   now,
	}
}

// announce publishes the IDs created by a run. Publishing failures do not fail the import.
func (s *importService) announce(ctx context.Context, stats *entity.ImportStats) {
	if s.publisher == nil || len(stats.NewEventIDs) == 0 {
		return
	}

	ids := make([]string, 0, len(stats.NewEventIDs))
	for _, id := range stats.NewEventIDs {
		ids = append(ids, id.String())
	}

	msg := &service.NewEventsMessage{
		Source:   string(stats.Source),
		City:     stats.City,
		EventIDs: ids,
	}
	if err := s.publisher.PublishNewEvents(ctx, msg); err != nil {
		s.logger.Warn("Failed to announce new events",
			slog.String(logs.KeySource, string(stats.Source)),
			slog.String(logs.KeyCity, stats.City),
			slog.Any("error", err),
		)
	}
}
