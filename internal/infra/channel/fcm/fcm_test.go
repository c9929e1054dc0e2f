package fcm

import (
	"context"
	"errors"
	"testing"

	"eventradar/internal/domain/entity"
	"eventradar/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnregistered = errors.New("registration-token-not-registered")

type fakeClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)

	return "projects/p/messages/1", f.err
}

func TestChannel_Send(t *testing.T) {
	client := &fakeClient{}
	ch := newChannel(client)

	require.NoError(t, ch.Send(context.Background(), "token-1", "New event near you!\n\nJazz night"))
	require.Len(t, client.sent, 1)

	assert.Equal(t, entity.ChannelFCM, ch.Channel())
	assert.Equal(t, "token-1", client.sent[0].Token)
	assert.Equal(t, "New event near you!", client.sent[0].Notification.Title)
	assert.Equal(t, "Jazz night", client.sent[0].Notification.Body)
}

func TestChannel_Send_Classification(t *testing.T) {
	t.Run("invalid token is permanent", func(t *testing.T) {
		ch := newChannel(&fakeClient{err: errUnregistered})
		ch.isPermanent = func(err error) bool { return errors.Is(err, errUnregistered) }

		err := ch.Send(context.Background(), "token-1", "hello")
		assert.True(t, service.IsPermanentDelivery(err))
	})

	t.Run("other failures are transient", func(t *testing.T) {
		ch := newChannel(&fakeClient{err: errors.New("unavailable")})

		err := ch.Send(context.Background(), "token-1", "hello")
		require.Error(t, err)
		assert.False(t, service.IsPermanentDelivery(err))
	})
}

func TestSplitTitle(t *testing.T) {
	title, body := splitTitle("single line")
	assert.Equal(t, defaultTitle, title)
	assert.Equal(t, "single line", body)
}
