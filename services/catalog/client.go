package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/rescoffi45/glassflix2/models"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// Window selects the trending time window.
type Window string

const (
	WindowDay  Window = "day"
	WindowWeek Window = "week"
)

// Client talks to the TMDB-compatible catalog API. Every exported operation
// degrades to an empty result on failure: errors are logged and absorbed here
// so callers never have to handle a catalog outage.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a catalog client. An empty baseURL selects the public
// TMDB endpoint.
func NewClient(apiKey, baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// Trending returns this week's trending movies and series, mixed.
func (c *Client) Trending(ctx context.Context, locale string) []models.MediaRecord {
	var page rawPage
	if err := c.get(ctx, "/trending/all/week", localeParams(locale), &page); err != nil {
		c.logger.Warn("catalog.trending_failed", "error", err)
		return nil
	}
	return NormalizeAll(page.Results)
}

// TrendingByKind returns trending items of a single kind for the given window.
func (c *Client) TrendingByKind(ctx context.Context, kind models.MediaKind, window Window, locale string) []models.MediaRecord {
	if window != WindowDay && window != WindowWeek {
		window = WindowDay
	}
	path := fmt.Sprintf("/trending/%s/%s", kindPath(kind), window)

	var page rawPage
	if err := c.get(ctx, path, localeParams(locale), &page); err != nil {
		c.logger.Warn("catalog.trending_by_kind_failed", "kind", kind, "window", window, "error", err)
		return nil
	}
	// Kind-specific endpoints omit media_type; stamp it from the request.
	return NormalizeAllAs(page.Results, kind)
}

// Discover returns popular items of a kind originating from a country.
func (c *Client) Discover(ctx context.Context, kind models.MediaKind, country, locale string) []models.MediaRecord {
	params := localeParams(locale)
	params.Set("sort_by", "popularity.desc")
	if country != "" {
		params.Set("with_origin_country", country)
	}

	var page rawPage
	if err := c.get(ctx, "/discover/"+kindPath(kind), params, &page); err != nil {
		c.logger.Warn("catalog.discover_failed", "kind", kind, "country", country, "error", err)
		return nil
	}
	return NormalizeAllAs(page.Results, kind)
}

// SearchMulti searches movies and series together. Person results and items
// without any artwork are dropped.
func (c *Client) SearchMulti(ctx context.Context, query, locale string) []models.MediaRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	params := localeParams(locale)
	params.Set("query", query)

	var page rawPage
	if err := c.get(ctx, "/search/multi", params, &page); err != nil {
		c.logger.Warn("catalog.search_failed", "query", query, "error", err)
		return nil
	}

	records := make([]models.MediaRecord, 0, len(page.Results))
	for _, raw := range page.Results {
		if raw.PosterPath == "" && raw.BackdropPath == "" {
			continue
		}
		if record, ok := Normalize(raw); ok {
			records = append(records, record)
		}
	}
	return records
}

// MediaDetail fetches the full detail record for an item, including the
// season list and next-episode pointer for series. Returns nil on failure.
func (c *Client) MediaDetail(ctx context.Context, id int64, kind models.MediaKind, locale string) *models.MediaDetail {
	path := fmt.Sprintf("/%s/%d", kindPath(kind), id)

	var raw rawDetail
	if err := c.get(ctx, path, localeParams(locale), &raw); err != nil {
		c.logger.Warn("catalog.detail_failed", "id", id, "kind", kind, "error", err)
		return nil
	}
	// The detail endpoint does not echo media_type; the request determines it.
	return raw.toDetail(kind)
}

// SeasonDetail fetches one season of a series with its episode list. Returns
// nil on failure.
func (c *Client) SeasonDetail(ctx context.Context, id int64, seasonNumber int, locale string) *models.SeasonDetail {
	path := fmt.Sprintf("/tv/%d/season/%d", id, seasonNumber)

	var raw rawSeasonDetail
	if err := c.get(ctx, path, localeParams(locale), &raw); err != nil {
		c.logger.Warn("catalog.season_failed", "id", id, "season", seasonNumber, "error", err)
		return nil
	}
	return raw.toSeasonDetail()
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("create request: %w", err))
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("catalog request: %w", err)
			}
			defer resp.Body.Close()

			switch {
			case resp.StatusCode == http.StatusOK:
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
				return fmt.Errorf("catalog request failed: %s", resp.Status)
			default:
				return retry.Unrecoverable(fmt.Errorf("catalog request failed: %s", resp.Status))
			}

			body, err = io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("read response: %w", err)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(300*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func localeParams(locale string) url.Values {
	params := url.Values{}
	if locale != "" {
		params.Set("language", locale)
	}
	return params
}

func kindPath(kind models.MediaKind) string {
	if kind == models.MediaKindSeries {
		return "tv"
	}
	return "movie"
}
