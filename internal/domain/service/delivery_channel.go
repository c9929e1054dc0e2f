package service

import (
	"context"

	"eventradar/internal/domain/entity"

	"github.com/pkg/errors"
)

// DeliveryError classifies a failed send.
// Permanent failures mean the recipient can no longer be reached through the channel.
type DeliveryError struct {
	Permanent bool
	Err       error
}

// NewPermanentDeliveryError wraps err as a permanent failure.
func NewPermanentDeliveryError(err error) *DeliveryError {
	return &DeliveryError{Permanent: true, Err: err}
}

// NewTransientDeliveryError wraps err as a transient failure.
func NewTransientDeliveryError(err error) *DeliveryError {
	return &DeliveryError{Err: err}
}

// Error implements the error interface
func (e *DeliveryError) Error() string {
	kind := "transient"
	if e.Permanent {
		kind = "permanent"
	}
	if e.Err == nil {
		return kind + " delivery failure"
	}

	return kind + " delivery failure: " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// IsPermanentDelivery reports whether err carries a permanent DeliveryError.
// Unclassified errors are treated as transient.
func IsPermanentDelivery(err error) bool {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de.Permanent
	}

	return false
}

// DeliveryChannel sends a text message to a channel-specific address.
type DeliveryChannel interface {
	// Channel returns the channel this implementation serves.
	Channel() entity.Channel

	// Send delivers text to address. Failures are returned as *DeliveryError.
	Send(ctx context.Context, address, text string) error
}
