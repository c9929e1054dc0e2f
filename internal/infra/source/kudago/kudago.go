// Package kudago imports events from the KudaGo public API.
package kudago

import (
	"cmp"
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
	"golang.org/x/time/rate"
)

const (
	maxPageSize    = 100
	descriptionCut = 500
	requestFields  = "id,title,description,body_text,place,dates,price,is_free,images,site_url,categories"
)

// citySlugs maps configured city names onto KudaGo location slugs.
var citySlugs = map[string]string{
	"voronezh":         "vrn",
	"moscow":           "msk",
	"spb":              "spb",
	"saint-petersburg": "spb",
	"ekaterinburg":     "ekb",
	"kazan":            "kzn",
	"nizhny_novgorod":  "nnv",
	"nizhny-novgorod":  "nnv",
	"novosibirsk":      "nsk",
	"samara":           "smr",
	"krasnoyarsk":      "krs",
	"krasnodar":        "krd",
	"sochi":            "sochi",
	"rostov":           "rnd",
}

// categories maps KudaGo category slugs onto event categories. Unmatched events are festivals.
var categories = map[string]entity.Category{
	"concert":       entity.CategoryConcert,
	"concerts":      entity.CategoryConcert,
	"theater":       entity.CategoryTheater,
	"theatre":       entity.CategoryTheater,
	"exhibition":    entity.CategoryExhibition,
	"exhibitions":   entity.CategoryExhibition,
	"sport":         entity.CategorySport,
	"festival":      entity.CategoryFestival,
	"festivals":     entity.CategoryFestival,
	"cinema":        entity.CategoryFestival,
	"party":         entity.CategoryFestival,
	"show":          entity.CategoryFestival,
	"entertainment": entity.CategoryFestival,
	"kids":          entity.CategoryFestival,
	"education":     entity.CategoryFestival,
	"business":      entity.CategoryFestival,
	"other":         entity.CategoryFestival,
}

type eventsPage struct {
	Next    *string       `json:"next"`
	Results []kudagoEvent `json:"results"`
}

type kudagoEvent struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	BodyText    string   `json:"body_text"`
	Price       string   `json:"price"`
	IsFree      bool     `json:"is_free"`
	SiteURL     string   `json:"site_url"`
	Categories  []string `json:"categories"`
	Place       *struct {
		Title  string `json:"title"`
		Coords *struct {
			Lat *float64 `json:"lat"`
			Lon *float64 `json:"lon"`
		} `json:"coords"`
	} `json:"place"`
	Dates []struct {
		Start int64 `json:"start"`
		End   int64 `json:"end"`
	} `json:"dates"`
	Images []struct {
		Image string `json:"image"`
	} `json:"images"`
}

// Source fetches events from KudaGo, one rate-limited request per page.
type Source struct {
	baseURL  string
	pageSize int
	client   *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
	now      func() time.Time
}

var _ service.EventSource = (*Source)(nil)

// NewSource creates a KudaGo source from the importer configuration
func NewSource(cfg *config.Config, logger *slog.Logger) *Source {
	kcfg := cfg.Importer.KudaGo

	pageSize := kcfg.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	limit := rate.Inf
	if kcfg.PageInterval > 0 {
		limit = rate.Every(kcfg.PageInterval)
	}

	return &Source{
		baseURL:  strings.TrimRight(kcfg.BaseURL, "/"),
		pageSize: pageSize,
		client:   &http.Client{Timeout: kcfg.Timeout},
		limiter:  rate.NewLimiter(limit, 1),
		logger:   logger.With(slog.String(logs.KeySource, string(entity.SourceKudaGo))),
		now:      time.Now,
	}
}

// Source returns the source tag
func (s *Source) Source() entity.Source {
	return entity.SourceKudaGo
}

// Fetch returns up to limit events starting within windowDays in city
func (s *Source) Fetch(ctx context.Context, city string, windowDays, limit int) ([]*entity.RawEvent, error) {
	slug := citySlug(city)
	now := s.now()

	query := url.Values{}
	query.Set("location", slug)
	query.Set("actual_since", strconv.FormatInt(now.Unix(), 10))
	query.Set("actual_until", strconv.FormatInt(now.AddDate(0, 0, windowDays).Unix(), 10))
	query.Set("page_size", strconv.Itoa(min(s.pageSize, max(limit, 1))))
	query.Set("fields", requestFields)
	query.Set("expand", "place")
	query.Set("order_by", "publication_date")

	events := make([]*entity.RawEvent, 0, max(limit, 0))
	for page := 1; len(events) < limit; page++ {
		query.Set("page", strconv.Itoa(page))

		result, err := s.fetchPage(ctx, query)
		if err != nil {
			return nil, errors.WithMessagef(err, "kudago page %d for %s", page, slug)
		}

		for i := range result.Results {
			events = append(events, toRawEvent(&result.Results[i], slug, now))
		}

		if result.Next == nil || len(result.Results) == 0 {
			break
		}
	}

	if len(events) > limit {
		events = events[:limit]
	}

	s.logger.Debug("Fetched events", slog.String(logs.KeyCity, city), slog.Int("count", len(events)))

	return events, nil
}

func (s *Source) fetchPage(ctx context.Context, query url.Values) (*eventsPage, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/events/?"+query.Encode(), nil)
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
		return nil, fmt.Errorf("%w: http %d", service.ErrSourceUnavailable, resp.StatusCode)
	}

	var page eventsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", service.ErrSourceUnavailable, err)
	}

	return &page, nil
}

func citySlug(city string) string {
	if slug, ok := citySlugs[strings.ToLower(city)]; ok {
		return slug
	}

	return strings.ToLower(city)
}

func toRawEvent(e *kudagoEvent, slug string, now time.Time) *entity.RawEvent {
	sourceID := strconv.FormatInt(e.ID, 10)
	raw := &entity.RawEvent{
		SourceID:    &sourceID,
		Title:       strings.TrimSpace(e.Title),
		Category:    string(category(e.Categories)),
		Description: truncateRunes(strings.TrimSpace(cmp.Or(strings.TrimSpace(e.Description), e.BodyText)), descriptionCut),
		Price:       strings.TrimSpace(e.Price),
		SourceURL:   e.SiteURL,
	}
	if e.IsFree {
		raw.Price = "free"
	}
	if raw.SourceURL == "" && e.ID != 0 {
		raw.SourceURL = fmt.Sprintf("https://kudago.com/%s/event/%d/", slug, e.ID)
	}
	if len(e.Images) > 0 {
		raw.ImageURL = e.Images[0].Image
	}

	if e.Place != nil {
		raw.Venue = strings.TrimSpace(e.Place.Title)
		if c := e.Place.Coords; c != nil && c.Lat != nil && c.Lon != nil && (*c.Lat != 0 || *c.Lon != 0) {
			raw.Latitude = c.Lat
			raw.Longitude = c.Lon
		}
	}

	raw.StartTime, raw.EndTime = pickDates(e, now)

	return raw
}

// pickDates returns the first date that has not ended yet, or the first date at all.
// KudaGo uses non-positive timestamps for unknown bounds.
func pickDates(e *kudagoEvent, now time.Time) (time.Time, *time.Time) {
	if len(e.Dates) == 0 {
		return time.Time{}, nil
	}

	chosen := e.Dates[0]
	for _, d := range e.Dates {
		if d.End > 0 && d.End >= now.Unix() {
			chosen = d

			break
		}
	}

	var start time.Time
	if chosen.Start > 0 {
		start = time.Unix(chosen.Start, 0).UTC()
	}

	var end *time.Time
	if chosen.End > 0 && chosen.End >= chosen.Start {
		t := time.Unix(chosen.End, 0).UTC()
		end = &t
	}

	return start, end
}

func category(slugs []string) entity.Category {
	for _, slug := range slugs {
		if c, ok := categories[strings.ToLower(slug)]; ok {
			return c
		}
	}

	return entity.CategoryFestival
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
