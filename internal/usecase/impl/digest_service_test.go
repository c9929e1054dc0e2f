package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"eventradar/internal/domain/entity"
	"eventradar/internal/domain/service"
	"eventradar/internal/infra/metrics"
	mockRepo "eventradar/internal/mocks/repository"
	mockSvc "eventradar/internal/mocks/service"
	"eventradar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type digestFixture struct {
	eventRepo        *mockRepo.MockEventRepository
	recipientRepo    *mockRepo.MockRecipientRepository
	notificationRepo *mockRepo.MockNotificationRepository
	telegram         *mockSvc.MockDeliveryChannel
	service          usecase.DigestUsecase
}

func newDigestFixture(t *testing.T) *digestFixture {
	t.Helper()

	f := &digestFixture{
		eventRepo:        mockRepo.NewMockEventRepository(t),
		recipientRepo:    mockRepo.NewMockRecipientRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		telegram:         mockSvc.NewMockDeliveryChannel(t),
	}
	f.telegram.EXPECT().Channel().Return(entity.ChannelTelegram)

	svc, err := NewDigestService(DigestServiceParams{
		EventRepo:        f.eventRepo,
		RecipientRepo:    f.recipientRepo,
		NotificationRepo: f.notificationRepo,
		Channels:         []service.DeliveryChannel{f.telegram},
		Locks:            NewRecipientLocks(),
		Metrics:          metrics.New(),
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})
	require.NoError(t, err)
	f.service = svc

	return f
}

func TestDigestService_SendDailyDigest(t *testing.T) {
	f := newDigestFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	dayStart := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	events := []*entity.Event{
		newTestEvent("Morning run", 55.75, 37.61, dayStart.Add(10*time.Hour)),
		newTestEvent("Opera", 55.75, 37.61, dayStart.Add(19*time.Hour)),
	}
	active := newTestRecipient(entity.ChannelTelegram, "100")
	gone := newTestRecipient(entity.ChannelTelegram, "200")

	f.eventRepo.EXPECT().FindStartingBetween(ctx, mock.MatchedBy(dayStart.Equal), mock.MatchedBy(dayStart.AddDate(0, 0, 1).Equal)).Return(events, nil)
	f.recipientRepo.EXPECT().FindDigestSubscribers(ctx).Return([]*entity.Recipient{active, gone}, nil)
	f.telegram.EXPECT().Send(ctx, "100", mock.MatchedBy(func(text string) bool {
		return strings.HasPrefix(text, "Events today (01.05.2026)")
	})).Return(nil)
	f.telegram.EXPECT().Send(ctx, "200", mock.Anything).
		Return(service.NewPermanentDeliveryError(errors.New("chat not found")))
	f.recipientRepo.EXPECT().Deactivate(ctx, gone.ID).Return(nil)
	f.notificationRepo.EXPECT().RecordNotifications(ctx, mock.MatchedBy(func(records []*entity.NotificationRecord) bool {
		return len(records) == 2 &&
			records[0].RecipientID == active.ID &&
			records[0].Type == entity.NotificationTypeDailyDigest
	})).Return(nil)

	report, err := f.service.SendDailyDigest(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, "2026-05-01", report.Day)
	assert.Equal(t, 2, report.Events)
	assert.Equal(t, 2, report.Recipients)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Deactivated)
}

func TestDigestService_SendDailyDigest_NoEvents(t *testing.T) {
	f := newDigestFixture(t)
	ctx := context.Background()

	f.eventRepo.EXPECT().FindStartingBetween(ctx, mock.Anything, mock.Anything).Return(nil, nil)

	report, err := f.service.SendDailyDigest(ctx, time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Zero(t, report.Events)
	f.recipientRepo.AssertNotCalled(t, "FindDigestSubscribers", mock.Anything)
}
