package postgres

import (
	"context"

	"eventradar/internal/domain/entity"
	"eventradar/internal/domain/repository"
	"eventradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// FindNotifiedEventIDs returns which of eventIDs the recipient has already been sent.
func (repo *notificationRepository) FindNotifiedEventIDs(ctx context.Context, recipientID uuid.UUID, notificationType entity.NotificationType, eventIDs []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	notified := make(map[uuid.UUID]struct{})
	if len(eventIDs) == 0 {
		return notified, nil
	}

	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationRecordModel{}).
		Where("recipient_id = ? AND notification_type = ? AND event_id IN ?", recipientID, string(notificationType), eventIDs).
		Pluck("event_id", &ids).Error; err != nil {
		return nil, wrapDBError(err, "failed to find notification history")
	}

	for _, id := range ids {
		notified[id] = struct{}{}
	}

	return notified, nil
}

// RecordNotifications persists history records, skipping those that already exist.
func (repo *notificationRepository) RecordNotifications(ctx context.Context, records []*entity.NotificationRecord) error {
	if len(records) == 0 {
		return nil
	}

	recordModels := make([]*model.NotificationRecordModel, 0, len(records))
	for _, record := range records {
		if record.ID == uuid.Nil {
			record.ID = uuid.New()
		}
		recordModels = append(recordModels, fromNotificationRecordDomain(record))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&recordModels).Error; err != nil {
		// A concurrent writer may still win the race on drivers without ON CONFLICT support
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return wrapDBError(err, "failed to record notifications")
	}

	return nil
}

// --- Mapper Functions ---

// fromNotificationRecordDomain converts a domain NotificationRecord to a GORM NotificationRecordModel.
func fromNotificationRecordDomain(data *entity.NotificationRecord) *model.NotificationRecordModel {
	if data == nil {
		return nil
	}

	return &model.NotificationRecordModel{
		ID:               data.ID,
		RecipientID:      data.RecipientID,
		EventID:          data.EventID,
		NotificationType: string(data.Type),
		SentAt:           data.SentAt.UTC(),
	}
}
