package postgres

import (
	"context"

	"eventradar/internal/errors"
	"eventradar/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables and indexes of every model.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
