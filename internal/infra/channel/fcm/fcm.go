// Package fcm delivers messages as Firebase Cloud Messaging pushes.
package fcm

import (
	"context"
	"fmt"
	"strings"

	"eventradar/internal/domain/entity"
	"eventradar/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

const defaultTitle = "Event Radar"

type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Channel sends pushes to device tokens
type Channel struct {
	client      messagingClient
	isPermanent func(error) bool
}

var _ service.DeliveryChannel = (*Channel)(nil)

// NewChannel creates a new Firebase channel instance
func NewChannel(ctx context.Context, projectID, credentialsPath string) (*Channel, error) {
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	opts := make([]option.ClientOption, 0, 1)
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return newChannel(client), nil
}

func newChannel(client messagingClient) *Channel {
	return &Channel{
		client:      client,
		isPermanent: isInvalidToken,
	}
}

// Channel returns the channel tag
func (c *Channel) Channel() entity.Channel {
	return entity.ChannelFCM
}

// Send pushes text to a single device token. The first line becomes the notification title.
func (c *Channel) Send(ctx context.Context, address, text string) error {
	title, body := splitTitle(text)

	message := &messaging.Message{
		Token: address,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	if _, err := c.client.Send(ctx, message); err != nil {
		err = fmt.Errorf("failed to send notification: %w", err)
		if c.isPermanent(err) {
			return service.NewPermanentDeliveryError(err)
		}

		return service.NewTransientDeliveryError(err)
	}

	return nil
}

// isInvalidToken reports whether the token is unregistered or malformed
func isInvalidToken(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}

func splitTitle(text string) (string, string) {
	title, body, found := strings.Cut(text, "\n")
	if !found {
		return defaultTitle, text
	}

	return strings.TrimSpace(title), strings.TrimSpace(body)
}
