package impl

import (
	"context"
	"testing"

	"eventradar/internal/domain/entity"
	domainerrors "eventradar/internal/domain/errors"
	"eventradar/internal/domain/repository"
	mockRepo "eventradar/internal/mocks/repository"
	"eventradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecipientService_SavePreferences(t *testing.T) {
	recipientRepo := mockRepo.NewMockRecipientRepository(t)
	svc := NewRecipientService(recipientRepo, newTestConfig())

	ctx := context.Background()
	id := uuid.New()

	recipientRepo.EXPECT().UpsertRecipient(ctx, mock.AnythingOfType("*entity.Recipient")).
		Run(func(_ context.Context, recipient *entity.Recipient) {
			recipient.ID = id
		}).
		Return(nil)

	recipient, err := svc.SavePreferences(ctx, &usecase.RecipientPreferences{
		AccountID:            "42",
		Address:              "42",
		NotificationsEnabled: true,
		NotifyOnImport:       true,
		Latitude:             floatPtr(55.75),
		Longitude:            floatPtr(37.61),
		Categories:           []string{"Concert", "unknown"},
		QuietStart:           "23:00",
		QuietEnd:             "08:00",
	})
	require.NoError(t, err)

	assert.Equal(t, id, recipient.ID)
	assert.Equal(t, entity.ChannelTelegram, recipient.Channel)
	assert.True(t, recipient.IsActive)
	assert.InDelta(t, 5000, recipient.RadiusMeters, 0)
	assert.Equal(t, []entity.Category{entity.CategoryConcert, entity.CategoryOther}, recipient.PreferredCategories)
	require.NotNil(t, recipient.QuietHours)
	assert.Equal(t, "23:00", recipient.QuietHours.Start.String())
	assert.Equal(t, "08:00", recipient.QuietHours.End.String())
}

func TestRecipientService_SavePreferences_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		prefs usecase.RecipientPreferences
		want  string
	}{
		{
			name:  "only quiet start",
			prefs: usecase.RecipientPreferences{AccountID: "1", QuietStart: "23:00"},
			want:  domainerrors.ErrInvalidQuietHours.ErrorCode(),
		},
		{
			name:  "malformed quiet end",
			prefs: usecase.RecipientPreferences{AccountID: "1", QuietStart: "23:00", QuietEnd: "8am"},
			want:  domainerrors.ErrInvalidQuietHours.ErrorCode(),
		},
		{
			name:  "unknown channel",
			prefs: usecase.RecipientPreferences{AccountID: "1", Channel: "sms"},
			want:  domainerrors.ErrValidationFailed.ErrorCode(),
		},
		{
			name:  "half a location",
			prefs: usecase.RecipientPreferences{AccountID: "1", Latitude: floatPtr(55.75)},
			want:  domainerrors.ErrValidationFailed.ErrorCode(),
		},
		{
			name:  "unknown timezone",
			prefs: usecase.RecipientPreferences{AccountID: "1", Timezone: "Mars/Olympus"},
			want:  domainerrors.ErrValidationFailed.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipientRepo := mockRepo.NewMockRecipientRepository(t)
			svc := NewRecipientService(recipientRepo, newTestConfig())

			_, err := svc.SavePreferences(context.Background(), &tt.prefs)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.want, appErr.ErrorCode())
		})
	}
}

func TestRecipientService_GetRecipient_NotFound(t *testing.T) {
	recipientRepo := mockRepo.NewMockRecipientRepository(t)
	svc := NewRecipientService(recipientRepo, newTestConfig())

	ctx := context.Background()
	recipientRepo.EXPECT().FindByAccountID(ctx, "missing").Return(nil, repository.ErrRecipientNotFound)

	_, err := svc.GetRecipient(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrRecipientNotFound)
}
