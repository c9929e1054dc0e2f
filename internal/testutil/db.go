// Package testutil provides helpers shared by tests.
package testutil

import (
	"context"
	"testing"

	"eventradar/internal/infra/persistence/postgres"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory SQLite database that lives for the duration of the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Each connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, postgres.Migrate(context.Background(), db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}
