package postgres

import (
	"context"

	"eventradar/internal/domain/entity"
	domainerrors "eventradar/internal/domain/errors"
	"eventradar/internal/domain/repository"
	"eventradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recipientUpsertColumns are overwritten when a recipient with the same account already exists.
var recipientUpsertColumns = []string{
	"channel", "address", "is_active", "notifications_enabled", "notify_on_import",
	"latitude", "longitude", "radius_meters", "preferred_city", "preferred_categories",
	"quiet_start", "quiet_end", "timezone", "updated_at",
}

// recipientRepository implements the repository.RecipientRepository interface.
type recipientRepository struct {
	db *gorm.DB
}

// NewRecipientRepository is the constructor for recipientRepository.
func NewRecipientRepository(db *gorm.DB) repository.RecipientRepository {
	return &recipientRepository{
		db: db,
	}
}

// UpsertRecipient creates or replaces a recipient keyed by its account ID.
func (repo *recipientRepository) UpsertRecipient(ctx context.Context, recipient *entity.Recipient) error {
	if recipient.ID == uuid.Nil {
		recipient.ID = uuid.New()
	}
	recipientM := fromRecipientDomain(recipient)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns(recipientUpsertColumns),
		}).
		Create(recipientM).Error; err != nil {
		if isConnectionError(err) {
			return wrapDBError(err, "failed to upsert recipient")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert recipient")
	}

	// On conflict the stored row keeps its original ID
	stored, err := repo.FindByAccountID(ctx, recipient.AccountID)
	if err != nil {
		return err
	}
	recipient.ID = stored.ID
	recipient.CreatedAt = stored.CreatedAt
	recipient.UpdatedAt = stored.UpdatedAt

	return nil
}

// FindByAccountID retrieves a recipient by its external account ID.
func (repo *recipientRepository) FindByAccountID(ctx context.Context, accountID string) (*entity.Recipient, error) {
	var recipientM model.RecipientModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&recipientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipientNotFound
		}

		return nil, wrapDBError(err, "failed to find recipient by account ID")
	}

	return toRecipientDomain(&recipientM), nil
}

// FindNewEventSubscribers returns active recipients opted into new-event pushes.
func (repo *recipientRepository) FindNewEventSubscribers(ctx context.Context) ([]*entity.Recipient, error) {
	return repo.findWhere(ctx, "is_active = ? AND notifications_enabled = ? AND notify_on_import = ?", true, true, true)
}

// FindDigestSubscribers returns active recipients with notifications enabled.
func (repo *recipientRepository) FindDigestSubscribers(ctx context.Context) ([]*entity.Recipient, error) {
	return repo.findWhere(ctx, "is_active = ? AND notifications_enabled = ?", true, true)
}

func (repo *recipientRepository) findWhere(ctx context.Context, query string, args ...any) ([]*entity.Recipient, error) {
	var recipientModels []*model.RecipientModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at ASC, id ASC").
		Find(&recipientModels).Error; err != nil {
		return nil, wrapDBError(err, "failed to find recipients")
	}

	recipients := make([]*entity.Recipient, 0, len(recipientModels))
	for _, recipientM := range recipientModels {
		recipients = append(recipients, toRecipientDomain(recipientM))
	}

	return recipients, nil
}

// Deactivate clears the active flag of a recipient.
func (repo *recipientRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecipientModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return wrapDBError(result.Error, "failed to deactivate recipient")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipientNotFound
	}

	return nil
}

// CountRecipients returns the total and the active number of recipients.
func (repo *recipientRepository) CountRecipients(ctx context.Context) (total, active int64, err error) {
	if err := repo.db.WithContext(ctx).Model(&model.RecipientModel{}).Count(&total).Error; err != nil {
		return 0, 0, wrapDBError(err, "failed to count recipients")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.RecipientModel{}).
		Where("is_active = ?", true).
		Count(&active).Error; err != nil {
		return 0, 0, wrapDBError(err, "failed to count active recipients")
	}

	return total, active, nil
}

// --- Mapper Functions ---

// toRecipientDomain converts a GORM RecipientModel to a domain Recipient entity.
func toRecipientDomain(data *model.RecipientModel) *entity.Recipient {
	if data == nil {
		return nil
	}

	categories := make([]entity.Category, 0, len(data.PreferredCategories))
	for _, c := range data.PreferredCategories {
		categories = append(categories, entity.Category(c))
	}

	return &entity.Recipient{
		ID:                   data.ID,
		AccountID:            data.AccountID,
		Channel:              entity.Channel(data.Channel),
		Address:              data.Address,
		IsActive:             data.IsActive,
		NotificationsEnabled: data.NotificationsEnabled,
		NotifyOnImport:       data.NotifyOnImport,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		RadiusMeters:         data.RadiusMeters,
		PreferredCity:        data.PreferredCity,
		PreferredCategories:  categories,
		QuietHours:           toQuietHours(data.QuietStart, data.QuietEnd),
		Timezone:             data.Timezone,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromRecipientDomain converts a domain Recipient entity to a GORM RecipientModel.
func fromRecipientDomain(data *entity.Recipient) *model.RecipientModel {
	if data == nil {
		return nil
	}

	categories := make([]string, 0, len(data.PreferredCategories))
	for _, c := range data.PreferredCategories {
		categories = append(categories, string(c))
	}

	recipientM := &model.RecipientModel{
		ID:                   data.ID,
		AccountID:            data.AccountID,
		Channel:              string(data.Channel),
		Address:              data.Address,
		IsActive:             data.IsActive,
		NotificationsEnabled: data.NotificationsEnabled,
		NotifyOnImport:       data.NotifyOnImport,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		RadiusMeters:         data.RadiusMeters,
		PreferredCity:        data.PreferredCity,
		PreferredCategories:  categories,
		Timezone:             data.Timezone,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}

	if data.QuietHours != nil {
		start := data.QuietHours.Start.String()
		end := data.QuietHours.End.String()
		recipientM.QuietStart = &start
		recipientM.QuietEnd = &end
	}

	return recipientM
}

func toQuietHours(start, end *string) *entity.QuietHours {
	if start == nil || end == nil {
		return nil
	}

	startT, err := entity.ParseTimeOfDay(*start)
	if err != nil {
		return nil
	}
	endT, err := entity.ParseTimeOfDay(*end)
	if err != nil {
		return nil
	}

	return &entity.QuietHours{Start: startT, End: endT}
}
