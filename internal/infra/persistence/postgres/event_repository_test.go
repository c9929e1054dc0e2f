package postgres_test

import (
	"context"
	"testing"
	"time"

	"eventradar/internal/domain/entity"
	"eventradar/internal/domain/repository"
	"eventradar/internal/infra/persistence/postgres"
	"eventradar/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func newEvent(source entity.Source, sourceID *string, title string, start time.Time) *entity.Event {
	return &entity.Event{
		Source:      source,
		SourceID:    sourceID,
		Title:       title,
		Category:    entity.CategoryConcert,
		Description: "original",
		Price:       "500",
		Latitude:    51.6608,
		Longitude:   39.2003,
		StartTime:   start,
		StartDay:    start.Format(time.DateOnly),
		City:        "voronezh",
		LastUpdated: start.Add(-24 * time.Hour),
	}
}

func TestEventRepository_CreateAndFindBySourceID(t *testing.T) {
	repo := postgres.NewEventRepository(testutil.NewDB(t))
	ctx := context.Background()

	event := newEvent(entity.SourceKudaGo, strPtr("101"), "Jazz night", baseTime)
	require.NoError(t, repo.CreateEvent(ctx, event))
	assert.NotEqual(t, uuid.Nil, event.ID)

	found, err := repo.FindBySourceID(ctx, entity.SourceKudaGo, "101")
	require.NoError(t, err)
	assert.Equal(t, event.ID, found.ID)
	assert.Equal(t, "Jazz night", found.Title)
	assert.True(t, baseTime.Equal(found.StartTime))
	assert.Nil(t, found.EndTime)

	_, err = repo.FindBySourceID(ctx, entity.SourceYandexAfisha, "101")
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}

func TestEventRepository_CreateEvent_DuplicateSourceID(t *testing.T) {
	repo := postgres.NewEventRepository(testutil.NewDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateEvent(ctx, newEvent(entity.SourceKudaGo, strPtr("7"), "A", baseTime)))

	err := repo.CreateEvent(ctx, newEvent(entity.SourceKudaGo, strPtr("7"), "B", baseTime.Add(time.Hour)))
	assert.ErrorIs(t, err, repository.ErrDuplicateEvent)

	// Same source ID from another source is a different event
	require.NoError(t, repo.CreateEvent(ctx, newEvent(entity.SourceYandexAfisha, strPtr("7"), "A", baseTime)))
}

func TestEventRepository_FallbackKey(t *testing.T) {
	repo := postgres.NewEventRepository(testutil.NewDB(t))
	ctx := context.Background()

	first := newEvent(entity.SourceYandexAfisha, nil, "Street fair", baseTime)
	require.NoError(t, repo.CreateEvent(ctx, first))

	// Same title and day without a source ID collides
	err := repo.CreateEvent(ctx, newEvent(entity.SourceYandexAfisha, nil, "Street fair", baseTime.Add(2*time.Hour)))
	assert.ErrorIs(t, err, repository.ErrDuplicateEvent)

	// Next day is a different event
	require.NoError(t, repo.CreateEvent(ctx, newEvent(entity.SourceYandexAfisha, nil, "Street fair", baseTime.Add(24*time.Hour))))

	// Events with a source ID do not take part in the fallback index
	require.NoError(t, repo.CreateEvent(ctx, newEvent(entity.SourceYandexAfisha, strPtr("x1"), "Street fair", baseTime)))

	found, err := repo.FindByFallbackKey(ctx, entity.SourceYandexAfisha, "Street fair", baseTime.Format(time.DateOnly))
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = repo.FindByFallbackKey(ctx, entity.SourceYandexAfisha, "Other", baseTime.Format(time.DateOnly))
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}

func TestEventRepository_RefreshEvent(t *testing.T) {
	repo := postgres.NewEventRepository(testutil.NewDB(t))
	ctx := context.Background()

	event := newEvent(entity.SourceKudaGo, strPtr("55"), "Opera", baseTime)
	require.NoError(t, repo.CreateEvent(ctx, event))

	refreshedAt := baseTime.Add(-time.Hour)
	require.NoError(t, repo.RefreshEvent(ctx, event.ID, repository.EventRefresh{
		Description: "updated",
		ImageURL:    "https://img.example/1.jpg",
		Price:       "free",
		LastUpdated: refreshedAt,
	}))

	found, err := repo.FindBySourceID(ctx, entity.SourceKudaGo, "55")
	require.NoError(t, err)
	assert.Equal(t, "updated", found.Description)
	assert.Equal(t, "https://img.example/1.jpg", found.ImageURL)
	assert.Equal(t, "free", found.Price)
	assert.True(t, refreshedAt.Equal(found.LastUpdated))
	assert.Equal(t, "Opera", found.Title)
	assert.Equal(t, entity.CategoryConcert, found.Category)

	err = repo.RefreshEvent(ctx, uuid.New(), repository.EventRefresh{LastUpdated: refreshedAt})
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}

func TestEventRepository_FindByIDs_OrderedByStart(t *testing.T) {
	repo := postgres.NewEventRepository(testutil.NewDB(t))
	ctx := context.Background()

	late := newEvent(entity.SourceKudaGo, strPtr("1"), "Late", baseTime.Add(3*time.Hour))
	early := newEvent(entity.SourceKudaGo, strPtr("2"), "Early", baseTime)
	require.NoError(t, repo.CreateEvent(ctx, late))
	require.NoError(t, repo.CreateEvent(ctx, early))

	events, err := repo.FindByIDs(ctx, []uuid.UUID{late.ID, early.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Early", events[0].Title)
	assert.Equal(t, "Late", events[1].Title)

	events, err = repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventRepository_ArchiveAndDelete(t *testing.T) {
	repo := postgres.NewEventRepository(testutil.NewDB(t))
	ctx := context.Background()
	now := baseTime

	// Ended ten days ago
	old := newEvent(entity.SourceKudaGo, strPtr("old"), "Old", now.Add(-11*24*time.Hour))
	old.EndTime = timePtr(now.Add(-10 * 24 * time.Hour))
	// No end time, started three days ago
	recent := newEvent(entity.SourceKudaGo, strPtr("recent"), "Recent", now.Add(-3*24*time.Hour))
	// Ended forty days ago
	ancient := newEvent(entity.SourceKudaGo, strPtr("ancient"), "Ancient", now.Add(-41*24*time.Hour))
	ancient.EndTime = timePtr(now.Add(-40 * 24 * time.Hour))
	// Started long ago but still running
	running := newEvent(entity.SourceKudaGo, strPtr("running"), "Running", now.Add(-60*24*time.Hour))
	running.EndTime = timePtr(now.Add(24 * time.Hour))

	for _, e := range []*entity.Event{old, recent, ancient, running} {
		require.NoError(t, repo.CreateEvent(ctx, e))
	}

	archived, err := repo.ArchiveEndedBefore(ctx, now.Add(-7*24*time.Hour), now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, archived)

	// Already archived events are not counted again
	archived, err = repo.ArchiveEndedBefore(ctx, now.Add(-7*24*time.Hour), now)
	require.NoError(t, err)
	assert.EqualValues(t, 0, archived)

	deleted, err := repo.DeleteArchivedEndedBefore(ctx, now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	total, valid, err := repo.CountEvents(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.EqualValues(t, 2, valid)

	found, err := repo.FindBySourceID(ctx, entity.SourceKudaGo, "old")
	require.NoError(t, err)
	assert.True(t, found.IsArchived)
	require.NotNil(t, found.ArchivedAt)
	assert.True(t, now.Equal(*found.ArchivedAt))
}

func TestEventRepository_FindStartingBetween(t *testing.T) {
	repo := postgres.NewEventRepository(testutil.NewDB(t))
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	inside := newEvent(entity.SourceKudaGo, strPtr("in"), "Inside", day.Add(10*time.Hour))
	boundary := newEvent(entity.SourceKudaGo, strPtr("edge"), "Edge", day.Add(24*time.Hour))
	archived := newEvent(entity.SourceKudaGo, strPtr("arch"), "Archived", day.Add(12*time.Hour))
	archived.IsArchived = true

	for _, e := range []*entity.Event{inside, boundary, archived} {
		require.NoError(t, repo.CreateEvent(ctx, e))
	}

	events, err := repo.FindStartingBetween(ctx, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, inside.ID, events[0].ID)
}

func TestEventRepository_StorageUnavailable(t *testing.T) {
	db := testutil.NewDB(t)
	repo := postgres.NewEventRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.FindBySourceID(context.Background(), entity.SourceKudaGo, "1")
	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)

	err = repo.CreateEvent(context.Background(), newEvent(entity.SourceKudaGo, strPtr("1"), "A", baseTime))
	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)
}
