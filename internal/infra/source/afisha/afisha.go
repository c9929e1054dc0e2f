// Package afisha imports events from a Yandex Afisha JSON feed.
package afisha

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eventradar/config"
	"eventradar/internal/domain/entity"
	"eventradar/internal/domain/service"
	logs "eventradar/internal/infra/log"

	"github.com/pkg/errors"
)

// ErrNotConfigured is returned by Fetch when no feed URL is set.
var ErrNotConfigured = errors.New("afisha feed url is not configured")

type feed struct {
	Events []feedEvent `json:"events"`
}

type feedEvent struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Venue       string     `json:"venue"`
	Price       string     `json:"price"`
	Lat         *float64   `json:"lat"`
	Lon         *float64   `json:"lon"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end"`
	URL         string     `json:"url"`
	Image       string     `json:"image"`
}

// Source reads one city feed per Fetch call.
type Source struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

var _ service.EventSource = (*Source)(nil)

// NewSource creates an Afisha feed source from the importer configuration
func NewSource(cfg *config.Config, logger *slog.Logger) *Source {
	return &Source{
		baseURL: strings.TrimRight(cfg.Importer.Afisha.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Importer.Afisha.Timeout},
		logger:  logger.With(slog.String(logs.KeySource, string(entity.SourceYandexAfisha))),
	}
}

// Source returns the source tag
func (s *Source) Source() entity.Source {
	return entity.SourceYandexAfisha
}

// Fetch returns up to limit events starting within windowDays in city
func (s *Source) Fetch(ctx context.Context, city string, windowDays, limit int) ([]*entity.RawEvent, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("%w: %w", service.ErrSourceUnavailable, ErrNotConfigured)
	}

	query := url.Values{}
	query.Set("days", strconv.Itoa(windowDays))
	query.Set("limit", strconv.Itoa(limit))
	endpoint := fmt.Sprintf("%s/%s/events?%s", s.baseURL, url.PathEscape(city), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: afisha http %d", service.ErrSourceUnavailable, resp.StatusCode)
	}

	var body feed
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode afisha feed: %w", service.ErrSourceUnavailable, err)
	}

	events := make([]*entity.RawEvent, 0, len(body.Events))
	for i := range body.Events {
		events = append(events, toRawEvent(&body.Events[i]))
	}
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}

	s.logger.Debug("Fetched events", slog.String(logs.KeyCity, city), slog.Int("count", len(events)))

	return events, nil
}

func toRawEvent(e *feedEvent) *entity.RawEvent {
	raw := &entity.RawEvent{
		Title:       strings.TrimSpace(e.Title),
		Category:    e.Category,
		Description: strings.TrimSpace(e.Description),
		Venue:       strings.TrimSpace(e.Venue),
		Price:       strings.TrimSpace(e.Price),
		Latitude:    e.Lat,
		Longitude:   e.Lon,
		StartTime:   e.Start,
		EndTime:     e.End,
		SourceURL:   e.URL,
		ImageURL:    e.Image,
	}
	if id := strings.TrimSpace(e.ID); id != "" {
		raw.SourceID = &id
	}

	return raw
}
