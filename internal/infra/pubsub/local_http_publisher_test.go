package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishNewEvents(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishNewEvents(context.Background(), &service.NewEventsMessage{
		RequestID: "req-1",
		Source:    "kudago",
		City:      "moscow",
		EventIDs:  []string{"a", "b"},
	})
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "kudago", received.Message.Attributes["source"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var msg service.NewEventsMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, []string{"a", "b"}, msg.EventIDs)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishNewEvents(context.Background(), &service.NewEventsMessage{EventIDs: []string{"a"}})
	assert.Error(t, err)
}
