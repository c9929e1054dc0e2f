package postgres_test

import (
	"context"
	"testing"

	"eventradar/internal/domain/entity"
	"eventradar/internal/domain/repository"
	"eventradar/internal/infra/persistence/postgres"
	"eventradar/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func newRecipient(account string) *entity.Recipient {
	return &entity.Recipient{
		AccountID:            account,
		Channel:              entity.ChannelTelegram,
		Address:              account,
		IsActive:             true,
		NotificationsEnabled: true,
		NotifyOnImport:       true,
		RadiusMeters:         5000,
	}
}

func TestRecipientRepository_UpsertKeepsIdentity(t *testing.T) {
	repo := postgres.NewRecipientRepository(testutil.NewDB(t))
	ctx := context.Background()

	recipient := newRecipient("1001")
	recipient.Latitude = floatPtr(51.66)
	recipient.Longitude = floatPtr(39.20)
	recipient.PreferredCity = "voronezh"
	recipient.PreferredCategories = []entity.Category{entity.CategoryConcert, entity.CategoryTheater}
	recipient.QuietHours = &entity.QuietHours{Start: 23 * 60, End: 7 * 60}
	recipient.Timezone = "Europe/Moscow"
	require.NoError(t, repo.UpsertRecipient(ctx, recipient))
	firstID := recipient.ID

	found, err := repo.FindByAccountID(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, firstID, found.ID)
	assert.Equal(t, []entity.Category{entity.CategoryConcert, entity.CategoryTheater}, found.PreferredCategories)
	require.NotNil(t, found.QuietHours)
	assert.Equal(t, "23:00", found.QuietHours.Start.String())
	assert.Equal(t, "07:00", found.QuietHours.End.String())
	require.NotNil(t, found.Latitude)
	assert.InDelta(t, 51.66, *found.Latitude, 1e-9)

	update := newRecipient("1001")
	update.ID = uuid.New()
	update.PreferredCity = "moscow"
	update.NotifyOnImport = false
	require.NoError(t, repo.UpsertRecipient(ctx, update))
	assert.Equal(t, firstID, update.ID)

	found, err = repo.FindByAccountID(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, "moscow", found.PreferredCity)
	assert.False(t, found.NotifyOnImport)
	assert.Nil(t, found.QuietHours)
	assert.Empty(t, found.PreferredCategories)

	_, err = repo.FindByAccountID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrRecipientNotFound)
}

func TestRecipientRepository_Subscribers(t *testing.T) {
	repo := postgres.NewRecipientRepository(testutil.NewDB(t))
	ctx := context.Background()

	subscribed := newRecipient("a")
	digestOnly := newRecipient("b")
	digestOnly.NotifyOnImport = false
	disabled := newRecipient("c")
	disabled.NotificationsEnabled = false
	inactive := newRecipient("d")
	inactive.IsActive = false

	for _, r := range []*entity.Recipient{subscribed, digestOnly, disabled, inactive} {
		require.NoError(t, repo.UpsertRecipient(ctx, r))
	}

	newEvent, err := repo.FindNewEventSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, newEvent, 1)
	assert.Equal(t, "a", newEvent[0].AccountID)

	digest, err := repo.FindDigestSubscribers(ctx)
	require.NoError(t, err)
	accounts := make([]string, 0, len(digest))
	for _, r := range digest {
		accounts = append(accounts, r.AccountID)
	}
	assert.ElementsMatch(t, []string{"a", "b"}, accounts)

	total, active, err := repo.CountRecipients(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.EqualValues(t, 3, active)
}

func TestRecipientRepository_Deactivate(t *testing.T) {
	repo := postgres.NewRecipientRepository(testutil.NewDB(t))
	ctx := context.Background()

	recipient := newRecipient("blocked")
	require.NoError(t, repo.UpsertRecipient(ctx, recipient))
	require.NoError(t, repo.Deactivate(ctx, recipient.ID))

	found, err := repo.FindByAccountID(ctx, "blocked")
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	subscribers, err := repo.FindNewEventSubscribers(ctx)
	require.NoError(t, err)
	assert.Empty(t, subscribers)

	assert.ErrorIs(t, repo.Deactivate(ctx, uuid.New()), repository.ErrRecipientNotFound)
}
