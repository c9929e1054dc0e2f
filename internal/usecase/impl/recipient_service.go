package impl

import (
	"context"
	"strings"
	"time"

	"eventradar/config"
	"eventradar/internal/domain/entity"
	domainerrors "eventradar/internal/domain/errors"
	"eventradar/internal/domain/repository"
	"eventradar/internal/usecase"

	"github.com/pkg/errors"
)

type recipientService struct {
	recipientRepo repository.RecipientRepository
	defaultRadius float64
}

// NewRecipientService creates a new recipient service instance
func NewRecipientService(recipientRepo repository.RecipientRepository, cfg *config.Config) usecase.RecipientUsecase {
	return &recipientService{
		recipientRepo: recipientRepo,
		defaultRadius: cfg.Notification.DefaultRadius,
	}
}

// SavePreferences creates or updates a recipient. Saving always reactivates it.
func (s *recipientService) SavePreferences(ctx context.Context, prefs *usecase.RecipientPreferences) (*entity.Recipient, error) {
	recipient, err := s.toRecipient(prefs)
	if err != nil {
		return nil, err
	}

	if err := s.recipientRepo.UpsertRecipient(ctx, recipient); err != nil {
		return nil, errors.Wrap(err, "failed to save recipient")
	}

	return recipient, nil
}

// GetRecipient retrieves a recipient by account ID
func (s *recipientService) GetRecipient(ctx context.Context, accountID string) (*entity.Recipient, error) {
	recipient, err := s.recipientRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipientNotFound) {
			return nil, domainerrors.ErrRecipientNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipient")
	}

	return recipient, nil
}

func (s *recipientService) toRecipient(prefs *usecase.RecipientPreferences) (*entity.Recipient, error) {
	channel := entity.Channel(prefs.Channel)
	if channel == "" {
		channel = entity.ChannelTelegram
	}
	if channel != entity.ChannelTelegram && channel != entity.ChannelFCM {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown channel " + prefs.Channel)
	}

	if (prefs.Latitude == nil) != (prefs.Longitude == nil) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be set together")
	}

	radius := prefs.RadiusMeters
	if radius <= 0 {
		radius = s.defaultRadius
	}

	categories := make([]entity.Category, 0, len(prefs.Categories))
	for _, raw := range prefs.Categories {
		categories = append(categories, entity.ParseCategory(raw))
	}

	quiet, err := parseQuietHours(prefs.QuietStart, prefs.QuietEnd)
	if err != nil {
		return nil, err
	}

	if prefs.Timezone != "" {
		if _, err := time.LoadLocation(prefs.Timezone); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown timezone " + prefs.Timezone)
		}
	}

	return &entity.Recipient{
		AccountID:            strings.TrimSpace(prefs.AccountID),
		Channel:              channel,
		Address:              strings.TrimSpace(prefs.Address),
		IsActive:             true,
		NotificationsEnabled: prefs.NotificationsEnabled,
		NotifyOnImport:       prefs.NotifyOnImport,
		Latitude:             prefs.Latitude,
		Longitude:            prefs.Longitude,
		RadiusMeters:         radius,
		PreferredCity:        strings.TrimSpace(prefs.City),
		PreferredCategories:  categories,
		QuietHours:           quiet,
		Timezone:             prefs.Timezone,
	}, nil
}

func parseQuietHours(start, end string) (*entity.QuietHours, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, domainerrors.ErrInvalidQuietHours.WithDetails("both start and end are required")
	}

	startT, err := entity.ParseTimeOfDay(start)
	if err != nil {
		return nil, domainerrors.ErrInvalidQuietHours.WithDetails(err.Error())
	}
	endT, err := entity.ParseTimeOfDay(end)
	if err != nil {
		return nil, domainerrors.ErrInvalidQuietHours.WithDetails(err.Error())
	}

	return &entity.QuietHours{Start: startT, End: endT}, nil
}
