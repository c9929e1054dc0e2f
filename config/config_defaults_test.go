package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.Importer)
	assert.Equal(t, defaultCities, cfg.Importer.Cities)
	assert.Equal(t, []string{"kudago"}, cfg.Importer.Sources)
	assert.Equal(t, 30, cfg.Importer.WindowDays)
	assert.Equal(t, 100, cfg.Importer.Limit)
	assert.Equal(t, "https://kudago.com/public-api/v1.4", cfg.Importer.KudaGo.BaseURL)

	assert.InDelta(t, 5000.0, cfg.Notification.DefaultRadius, 0)
	assert.Equal(t, 5, cfg.Dispatch.MaxListed)
	assert.Equal(t, 2, cfg.Dispatch.RetryMax)

	assert.Equal(t, 7*24*time.Hour, cfg.Retention.ArchiveAfter)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention.DeleteAfter)

	assert.True(t, cfg.Scheduler.Jobs.Import.Enabled)
	assert.Equal(t, "0 */6 * * *", cfg.Scheduler.Jobs.Import.Spec)
	assert.Equal(t, "0 3 * * *", cfg.Scheduler.Jobs.Cleanup.Spec)
	assert.Equal(t, "0 9 * * *", cfg.Scheduler.Jobs.Digest.Spec)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, 5*time.Second, cfg.Database.PoolMonitorInterval)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Importer:  &ImporterConfig{Cities: []string{"kazan"}, WindowDays: 7},
		Dispatch:  &DispatchConfig{Workers: 2, RetryMax: 0},
		Scheduler: &SchedulerConfig{Timezone: "UTC"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, []string{"kazan"}, cfg.Importer.Cities)
	assert.Equal(t, 7, cfg.Importer.WindowDays)
	assert.Equal(t, 2, cfg.Dispatch.Workers)
	assert.Equal(t, 0, cfg.Dispatch.RetryMax)
	assert.Equal(t, "UTC", cfg.Scheduler.Timezone)
	assert.False(t, cfg.Scheduler.Jobs.Digest.Enabled)
	assert.Equal(t, "0 9 * * *", cfg.Scheduler.Jobs.Digest.Spec)
}

func TestApplyDefaults_NonPositiveImporterValues(t *testing.T) {
	cfg := &Config{
		Importer: &ImporterConfig{WindowDays: -1, Limit: -20, KudaGo: &KudaGoConfig{PageSize: -3}},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 30, cfg.Importer.WindowDays)
	assert.Equal(t, 100, cfg.Importer.Limit)
	assert.Equal(t, 100, cfg.Importer.KudaGo.PageSize)
}
