package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"eventradar/internal/domain/entity"
	"eventradar/internal/domain/repository"
	"eventradar/internal/domain/service"
	"eventradar/internal/infra/metrics"
	"eventradar/internal/infra/persistence/postgres"
	mockRepo "eventradar/internal/mocks/repository"
	mockSvc "eventradar/internal/mocks/service"
	"eventradar/internal/testutil"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type importFixture struct {
	eventRepo *mockRepo.MockEventRepository
	source    *mockSvc.MockEventSource
	publisher *mockSvc.MockEventPublisher
	service   *importService
}

func newImportFixture(t *testing.T) *importFixture {
	t.Helper()

	eventRepo := mockRepo.NewMockEventRepository(t)
	source := mockSvc.NewMockEventSource(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	source.EXPECT().Source().Return(entity.SourceKudaGo)

	svc, err := NewImportService(ImportServiceParams{
		EventRepo: eventRepo,
		Sources:   []service.EventSource{source},
		Publisher: publisher,
		Metrics:   metrics.New(),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)

	impl := svc.(*importService)
	impl.now = func() time.Time { return testStart.Add(-24 * time.Hour) }

	return &importFixture{
		eventRepo: eventRepo,
		source:    source,
		publisher: publisher,
		service:   impl,
	}
}

func newRawEvent(sourceID, title string) *entity.RawEvent {
	raw := &entity.RawEvent{
		Title:     title,
		Category:  "concert",
		Latitude:  floatPtr(55.75),
		Longitude: floatPtr(37.61),
		StartTime: testStart,
	}
	if sourceID != "" {
		raw.SourceID = strPtr(sourceID)
	}

	return raw
}

func TestImportService_Import_CreatesAndAnnounces(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	f.source.EXPECT().Fetch(ctx, "msk", 30, 10).Return([]*entity.RawEvent{
		newRawEvent("1", "Jazz"),
		newRawEvent("", "Street fair"),
	}, nil)

	f.eventRepo.EXPECT().FindBySourceID(ctx, entity.SourceKudaGo, "1").Return(nil, repository.ErrEventNotFound)
	f.eventRepo.EXPECT().FindByFallbackKey(ctx, entity.SourceKudaGo, "Street fair", "2026-05-01").Return(nil, repository.ErrEventNotFound)

	var created []*entity.Event
	f.eventRepo.EXPECT().CreateEvent(ctx, mock.AnythingOfType("*entity.Event")).
		Run(func(_ context.Context, event *entity.Event) {
			created = append(created, event)
		}).
		Return(nil).Times(2)

	f.publisher.EXPECT().PublishNewEvents(ctx, mock.MatchedBy(func(msg *service.NewEventsMessage) bool {
		return msg.Source == "kudago" && msg.City == "msk" && len(msg.EventIDs) == 2
	})).Return(nil)

	stats, err := f.service.Import(ctx, entity.SourceKudaGo, "msk", 30, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.Created)
	assert.Zero(t, stats.Updated)
	require.Len(t, created, 2)
	assert.Equal(t, []uuid.UUID{created[0].ID, created[1].ID}, stats.NewEventIDs)
	assert.Equal(t, entity.CategoryConcert, created[0].Category)
	assert.Equal(t, "2026-05-01", created[1].StartDay)
	assert.Nil(t, created[1].SourceID)
}

func TestImportService_Import_ExistingIsRefreshed(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	existing := newTestEvent("Jazz", 55.75, 37.61, testStart)
	raw := newRawEvent("1", "Jazz")
	raw.Price = "700 RUB"

	f.source.EXPECT().Fetch(ctx, "msk", 30, 10).Return([]*entity.RawEvent{raw}, nil)
	f.eventRepo.EXPECT().FindBySourceID(ctx, entity.SourceKudaGo, "1").Return(existing, nil)
	f.eventRepo.EXPECT().RefreshEvent(ctx, existing.ID, mock.MatchedBy(func(r repository.EventRefresh) bool {
		return r.Price == "700 RUB"
	})).Return(nil)

	stats, err := f.service.Import(ctx, entity.SourceKudaGo, "msk", 30, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Updated)
	assert.Zero(t, stats.Created)
	assert.Empty(t, stats.NewEventIDs)
}

func TestImportService_Import_SkipsInvalidCandidates(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	noCoords := newRawEvent("2", "Somewhere")
	noCoords.Latitude = nil
	noCoords.Longitude = nil
	noTitle := newRawEvent("3", " ")

	f.source.EXPECT().Fetch(ctx, "msk", 30, 10).Return([]*entity.RawEvent{noCoords, noTitle}, nil)

	stats, err := f.service.Import(ctx, entity.SourceKudaGo, "msk", 30, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.SkippedNoCoords)
	assert.Equal(t, 1, stats.Errors)
	assert.Zero(t, stats.Created)
}

func TestImportService_Import_DuplicateRaceBecomesUpdate(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	winner := newTestEvent("Jazz", 55.75, 37.61, testStart)

	f.source.EXPECT().Fetch(ctx, "msk", 30, 10).Return([]*entity.RawEvent{newRawEvent("1", "Jazz")}, nil)
	f.eventRepo.EXPECT().FindBySourceID(ctx, entity.SourceKudaGo, "1").Return(nil, repository.ErrEventNotFound).Once()
	f.eventRepo.EXPECT().CreateEvent(ctx, mock.Anything).Return(repository.ErrDuplicateEvent)
	f.eventRepo.EXPECT().FindBySourceID(ctx, entity.SourceKudaGo, "1").Return(winner, nil).Once()
	f.eventRepo.EXPECT().RefreshEvent(ctx, winner.ID, mock.Anything).Return(nil)

	stats, err := f.service.Import(ctx, entity.SourceKudaGo, "msk", 30, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Updated)
	assert.Zero(t, stats.Created)
}

func TestImportService_Import_StorageLossAborts(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	f.source.EXPECT().Fetch(ctx, "msk", 30, 10).Return([]*entity.RawEvent{
		newRawEvent("1", "Jazz"),
		newRawEvent("2", "Rock"),
	}, nil)
	f.eventRepo.EXPECT().FindBySourceID(ctx, entity.SourceKudaGo, "1").
		Return(nil, fmt.Errorf("%w: connection refused", repository.ErrStorageUnavailable))

	stats, err := f.service.Import(ctx, entity.SourceKudaGo, "msk", 30, 10)
	require.Error(t, err)

	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)
	assert.Equal(t, 2, stats.Total)
	assert.Zero(t, stats.Created)
}

func TestImportService_Import_SourceUnavailable(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	f.source.EXPECT().Fetch(ctx, "msk", 30, 10).Return(nil, errors.New("dial tcp: timeout"))

	stats, err := f.service.Import(ctx, entity.SourceKudaGo, "msk", 30, 10)
	require.Error(t, err)

	assert.Nil(t, stats)
	assert.ErrorIs(t, err, service.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "dial tcp: timeout")
}

func TestImportService_Import_UnknownSource(t *testing.T) {
	f := newImportFixture(t)

	_, err := f.service.Import(context.Background(), entity.SourceYandexAfisha, "msk", 30, 10)
	require.Error(t, err)
}

func TestImportService_Import_LimitTruncates(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	f.source.EXPECT().Fetch(ctx, "msk", 30, 1).Return([]*entity.RawEvent{
		newRawEvent("1", "Jazz"),
		newRawEvent("2", "Rock"),
	}, nil)
	f.eventRepo.EXPECT().FindBySourceID(ctx, entity.SourceKudaGo, "1").Return(newTestEvent("Jazz", 55.75, 37.61, testStart), nil)
	f.eventRepo.EXPECT().RefreshEvent(ctx, mock.Anything, mock.Anything).Return(nil)

	stats, err := f.service.Import(ctx, entity.SourceKudaGo, "msk", 30, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
}

func TestImportService_Import_NonPositiveWindowAndLimitUseConfig(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	f.source.EXPECT().Fetch(ctx, "msk", 30, 100).Return(nil, nil)

	stats, err := f.service.Import(ctx, entity.SourceKudaGo, "msk", -5, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
}

func TestImportService_Import_SamePayloadTwiceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	eventRepo := postgres.NewEventRepository(db)
	source := mockSvc.NewMockEventSource(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	source.EXPECT().Source().Return(entity.SourceKudaGo)
	svc, err := NewImportService(ImportServiceParams{
		EventRepo: eventRepo,
		Sources:   []service.EventSource{source},
		Publisher: publisher,
		Metrics:   metrics.New(),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)

	payload := func() []*entity.RawEvent {
		return []*entity.RawEvent{newRawEvent("101", "Jazz"), newRawEvent("", "Street fair")}
	}
	source.EXPECT().Fetch(ctx, "msk", 30, 10).Return(payload(), nil).Once()
	source.EXPECT().Fetch(ctx, "msk", 30, 10).Return(payload(), nil).Once()
	publisher.EXPECT().PublishNewEvents(ctx, mock.Anything).Return(nil).Once()

	first, err := svc.Import(ctx, entity.SourceKudaGo, "msk", 30, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)
	assert.Len(t, first.NewEventIDs, 2)

	total, _, err := eventRepo.CountEvents(ctx)
	require.NoError(t, err)

	second, err := svc.Import(ctx, entity.SourceKudaGo, "msk", 30, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.Updated)
	assert.Empty(t, second.NewEventIDs)

	after, _, err := eventRepo.CountEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, total, after)
}

func TestImportService_ImportAll_ContinuesPastFailingCity(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	f.source.EXPECT().Fetch(ctx, "msk", 30, 100).Return(nil, errors.New("bad gateway"))
	f.source.EXPECT().Fetch(ctx, "spb", 30, 100).Return([]*entity.RawEvent{newRawEvent("9", "Ballet")}, nil)
	f.eventRepo.EXPECT().FindBySourceID(ctx, entity.SourceKudaGo, "9").Return(nil, repository.ErrEventNotFound)
	f.eventRepo.EXPECT().CreateEvent(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishNewEvents(ctx, mock.Anything).Return(errors.New("topic gone"))

	stats, err := f.service.ImportAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Created)
	assert.Len(t, stats.NewEventIDs, 1)
}
