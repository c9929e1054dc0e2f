package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"eventradar/internal/domain/repository"
	mockRepo "eventradar/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupService_Cleanup(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	svc := NewCleanupService(eventRepo, newTestConfig(), newDiscardLogger())

	ctx := context.Background()
	now := time.Date(2026, 5, 1, 3, 0, 0, 0, time.UTC)

	eventRepo.EXPECT().ArchiveEndedBefore(ctx, now.Add(-7*24*time.Hour), now).Return(4, nil)
	eventRepo.EXPECT().DeleteArchivedEndedBefore(ctx, now.Add(-30*24*time.Hour)).Return(2, nil)

	report, err := svc.Cleanup(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, int64(4), report.Archived)
	assert.Equal(t, int64(2), report.Deleted)
}

func TestCleanupService_Cleanup_ArchiveFailureStops(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	svc := NewCleanupService(eventRepo, newTestConfig(), newDiscardLogger())

	ctx := context.Background()
	now := time.Date(2026, 5, 1, 3, 0, 0, 0, time.UTC)

	eventRepo.EXPECT().ArchiveEndedBefore(ctx, now.Add(-7*24*time.Hour), now).
		Return(0, fmt.Errorf("%w: down", repository.ErrStorageUnavailable))

	_, err := svc.Cleanup(ctx, now)
	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)
}

func TestStatsService_Snapshot(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	recipientRepo := mockRepo.NewMockRecipientRepository(t)
	svc := NewStatsService(eventRepo, recipientRepo)

	ctx := context.Background()
	eventRepo.EXPECT().CountEvents(ctx).Return(10, 7, nil)
	recipientRepo.EXPECT().CountRecipients(ctx).Return(3, 2, nil)

	stats, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(10), stats.TotalEvents)
	assert.Equal(t, int64(7), stats.ValidEvents)
	assert.Equal(t, int64(3), stats.TotalRecipients)
	assert.Equal(t, int64(2), stats.ActiveRecipients)
}
