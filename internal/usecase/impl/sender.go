package impl

import (
	"context"
	"time"

	"eventradar/config"
	"eventradar/internal/domain/entity"
	"eventradar/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrNoChannel is returned when a recipient's channel has no configured adapter.
var ErrNoChannel = errors.New("no delivery channel for recipient")

// sender routes a message to the recipient's channel and retries transient failures in place.
type sender struct {
	channels     map[entity.Channel]service.DeliveryChannel
	retryMax     int
	retryBackoff time.Duration
}

func newSender(channels []service.DeliveryChannel, cfg *config.DispatchConfig) *sender {
	byName := make(map[entity.Channel]service.DeliveryChannel, len(channels))
	for _, ch := range channels {
		if ch != nil {
			byName[ch.Channel()] = ch
		}
	}

	return &sender{
		channels:     byName,
		retryMax:     max(cfg.RetryMax, 0),
		retryBackoff: cfg.RetryBackoff,
	}
}

// send delivers text and returns the last failure, classified as a *service.DeliveryError.
func (s *sender) send(ctx context.Context, recipient *entity.Recipient, text string) error {
	ch, ok := s.channels[recipient.Channel]
	if !ok {
		return service.NewTransientDeliveryError(errors.Wrapf(ErrNoChannel, "channel %q", recipient.Channel))
	}

	var err error
	for attempt := 0; attempt <= s.retryMax; attempt++ {
		err = ch.Send(ctx, recipient.Address, text)
		if err == nil || service.IsPermanentDelivery(err) {
			return err
		}
		if attempt == s.retryMax {
			break
		}

		// Linear backoff between attempts
		select {
		case <-ctx.Done():
			return service.NewTransientDeliveryError(ctx.Err())
		case <-time.After(s.retryBackoff * time.Duration(attempt+1)):
		}
	}

	return err
}
