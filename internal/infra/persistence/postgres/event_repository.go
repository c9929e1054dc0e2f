// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"eventradar/internal/domain/entity"
	domainerrors "eventradar/internal/domain/errors"
	"eventradar/internal/domain/repository"
	"eventradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// effectiveEndExpr is the end of an event, falling back to its start when no end is known.
const effectiveEndExpr = "COALESCE(end_time, start_time)"

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// CreateEvent persists a new event.
func (repo *eventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isConnectionError(err) {
			return wrapDBError(err, "failed to create event")
		}
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEvent
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FindBySourceID looks up an event by its source-scoped identifier.
func (repo *eventRepository) FindBySourceID(ctx context.Context, source entity.Source, sourceID string) (*entity.Event, error) {
	var eventM model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("source = ? AND source_id = ?", string(source), sourceID).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, wrapDBError(err, "failed to find event by source ID")
	}

	return toEventDomain(&eventM), nil
}

// FindByFallbackKey looks up an event without a source ID by (source, title, start day).
func (repo *eventRepository) FindByFallbackKey(ctx context.Context, source entity.Source, title, startDay string) (*entity.Event, error) {
	var eventM model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("source = ? AND source_id IS NULL AND title = ? AND start_day = ?", string(source), title, startDay).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, wrapDBError(err, "failed to find event by fallback key")
	}

	return toEventDomain(&eventM), nil
}

// RefreshEvent overwrites the mutable fields of an existing event.
func (repo *eventRepository) RefreshEvent(ctx context.Context, id uuid.UUID, refresh repository.EventRefresh) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"description":  refresh.Description,
			"image_url":    refresh.ImageURL,
			"price":        refresh.Price,
			"last_updated": refresh.LastUpdated.UTC(),
		})

	if result.Error != nil {
		return wrapDBError(result.Error, "failed to refresh event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// FindByIDs returns the events with the given IDs, ordered by start time.
func (repo *eventRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var eventModels []*model.EventModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("start_time ASC, id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, wrapDBError(err, "failed to find events by IDs")
	}

	return toEventDomains(eventModels), nil
}

// FindStartingBetween returns non-archived events with from <= start_time < to.
func (repo *eventRepository) FindStartingBetween(ctx context.Context, from, to time.Time) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("is_archived = ? AND start_time >= ? AND start_time < ?", false, from.UTC(), to.UTC()).
		Order("start_time ASC, id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, wrapDBError(err, "failed to find events by start time")
	}

	return toEventDomains(eventModels), nil
}

// ArchiveEndedBefore flags non-archived events whose effective end is before cutoff.
func (repo *eventRepository) ArchiveEndedBefore(ctx context.Context, cutoff, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("is_archived = ? AND "+effectiveEndExpr+" < ?", false, cutoff.UTC()).
		Updates(map[string]any{
			"is_archived": true,
			"archived_at": now.UTC(),
		})

	if result.Error != nil {
		return 0, wrapDBError(result.Error, "failed to archive events")
	}

	return result.RowsAffected, nil
}

// DeleteArchivedEndedBefore removes archived events whose effective end is before cutoff.
func (repo *eventRepository) DeleteArchivedEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("is_archived = ? AND "+effectiveEndExpr+" < ?", true, cutoff.UTC()).
		Delete(&model.EventModel{})

	if result.Error != nil {
		return 0, wrapDBError(result.Error, "failed to delete archived events")
	}

	return result.RowsAffected, nil
}

// CountEvents returns the total and the non-archived number of events.
func (repo *eventRepository) CountEvents(ctx context.Context) (total, valid int64, err error) {
	if err := repo.db.WithContext(ctx).Model(&model.EventModel{}).Count(&total).Error; err != nil {
		return 0, 0, wrapDBError(err, "failed to count events")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("is_archived = ?", false).
		Count(&valid).Error; err != nil {
		return 0, 0, wrapDBError(err, "failed to count valid events")
	}

	return total, valid, nil
}

// --- Mapper Functions ---

func toEventDomains(models []*model.EventModel) []*entity.Event {
	events := make([]*entity.Event, 0, len(models))
	for _, eventM := range models {
		events = append(events, toEventDomain(eventM))
	}

	return events
}

// toEventDomain converts a GORM EventModel to a domain Event entity.
func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:          data.ID,
		Source:      entity.Source(data.Source),
		SourceID:    data.SourceID,
		Title:       data.Title,
		Category:    entity.Category(data.Category),
		Description: data.Description,
		Venue:       data.Venue,
		Price:       data.Price,
		SourceURL:   data.SourceURL,
		ImageURL:    data.ImageURL,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		StartTime:   data.StartTime.UTC(),
		EndTime:     utcPtr(data.EndTime),
		StartDay:    data.StartDay,
		City:        data.City,
		IsArchived:  data.IsArchived,
		ArchivedAt:  utcPtr(data.ArchivedAt),
		LastUpdated: data.LastUpdated.UTC(),
		CreatedAt:   data.CreatedAt,
	}
}

// fromEventDomain converts a domain Event entity to a GORM EventModel.
func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:          data.ID,
		Source:      string(data.Source),
		SourceID:    data.SourceID,
		Title:       data.Title,
		StartDay:    data.StartDay,
		Category:    string(data.Category),
		Description: data.Description,
		Venue:       data.Venue,
		Price:       data.Price,
		SourceURL:   data.SourceURL,
		ImageURL:    data.ImageURL,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		StartTime:   data.StartTime.UTC(),
		EndTime:     utcPtr(data.EndTime),
		City:        data.City,
		IsArchived:  data.IsArchived,
		ArchivedAt:  utcPtr(data.ArchivedAt),
		LastUpdated: data.LastUpdated.UTC(),
		CreatedAt:   data.CreatedAt,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()

	return &utc
}
