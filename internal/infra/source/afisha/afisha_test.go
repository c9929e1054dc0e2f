package afisha

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventradar/config"
	"eventradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(baseURL string) *Source {
	cfg := &config.Config{
		Importer: &config.ImporterConfig{
			Afisha: &config.AfishaConfig{BaseURL: baseURL, Timeout: 5 * time.Second},
		},
	}

	return NewSource(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/voronezh/events", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("days"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`{"events": [
			{"id": "a1", "title": " Swan Lake ", "category": "theater", "venue": "Opera house",
			 "lat": 51.66, "lon": 39.2, "start": "2026-05-02T19:00:00+03:00", "url": "https://afisha.yandex.ru/a1"},
			{"title": "Flea market", "start": "2026-05-03T10:00:00+03:00"},
			{"id": "a3", "title": "Extra", "start": "2026-05-04T10:00:00+03:00"}
		]}`))
	}))
	defer server.Close()

	events, err := newTestSource(server.URL).Fetch(context.Background(), "voronezh", 7, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "a1", *events[0].SourceID)
	assert.Equal(t, "Swan Lake", events[0].Title)
	assert.InDelta(t, 51.66, *events[0].Latitude, 1e-9)
	assert.True(t, events[0].StartTime.Equal(time.Date(2026, 5, 2, 16, 0, 0, 0, time.UTC)))

	assert.Nil(t, events[1].SourceID)
	assert.Nil(t, events[1].Latitude)
}

func TestSource_Fetch_Errors(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		_, err := newTestSource("").Fetch(context.Background(), "voronezh", 7, 10)
		assert.ErrorIs(t, err, service.ErrSourceUnavailable)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newTestSource(server.URL).Fetch(context.Background(), "voronezh", 7, 10)
		assert.ErrorIs(t, err, service.ErrSourceUnavailable)
	})
}
