// Package jikan is a thin client for the Jikan v4 REST API.
package jikan

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"anirex/internal/apperr"
	"anirex/internal/metrics"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"
)

const breakerName = "jikan"

type Config struct {
	BaseURL         string
	UserAgent       string
	Timeout         time.Duration
	BreakerFailures uint32
	BreakerCooldown time.Duration
}

// Client issues one GET per call. Failed calls are never retried; the
// breaker fails fast once the upstream keeps erroring.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	timeout    time.Duration
	cb         *gobreaker.CircuitBreaker[*http.Response]
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 5
	}
	if cfg.BreakerCooldown <= 0 {
		cfg.BreakerCooldown = 30 * time.Second
	}

	failures := cfg.BreakerFailures
	metrics.CatalogBreakerState.Set(0)

	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, apperr.ErrNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("catalog breaker state change")
			metrics.CatalogBreakerState.Set(stateValue(to))
		},
	})

	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		timeout:    cfg.Timeout,
		cb:         cb,
	}
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// Top lists /top/anime. typ and filter are passed through when non-empty.
func (c *Client) Top(ctx context.Context, typ, filter string, page int) (*Page, error) {
	q := url.Values{}
	if typ != "" {
		q.Set("type", typ)
	}
	if filter != "" {
		q.Set("filter", filter)
	}
	setPage(q, page)

	var res Page
	if err := c.get(ctx, "top", "/top/anime", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Upcoming lists /seasons/upcoming.
func (c *Client) Upcoming(ctx context.Context, page int) (*Page, error) {
	q := url.Values{}
	setPage(q, page)

	var res Page
	if err := c.get(ctx, "upcoming", "/seasons/upcoming", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Search(ctx context.Context, p SearchParams) (*Page, error) {
	var res Page
	if err := c.get(ctx, "search", "/anime", searchValues(p), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Anime fetches a single item. A 404 maps to apperr.ErrNotFound.
func (c *Client) Anime(ctx context.Context, id int) (*Anime, error) {
	var res detailEnvelope
	if err := c.get(ctx, "detail", "/anime/"+strconv.Itoa(id), nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func setPage(q url.Values, page int) {
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
}

func searchValues(p SearchParams) url.Values {
	q := url.Values{}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	if p.GenreID > 0 {
		q.Set("genres", strconv.Itoa(p.GenreID))
	}
	if p.MinScore > 0 {
		q.Set("min_score", strconv.FormatFloat(p.MinScore, 'f', -1, 64))
	}
	if p.Year > 0 {
		q.Set("start_date", fmt.Sprintf("%04d-01-01", p.Year))
		q.Set("end_date", fmt.Sprintf("%04d-12-31", p.Year))
	}
	setPage(q, p.Page)
	return q
}

func (c *Client) get(ctx context.Context, endpoint, path string, q url.Values, target any) error {
	start := time.Now()
	err := c.do(ctx, path, q, target)
	metrics.RecordCatalogRequest(endpoint, outcome(err), time.Since(start))
	return err
}

func (c *Client) do(ctx context.Context, path string, q url.Values, target any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	resp, err := c.cb.Execute(func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperr.ErrNetwork, err)
		}
		switch {
		case resp.StatusCode == http.StatusNotFound:
			resp.Body.Close()
			return nil, fmt.Errorf("%s: %w", path, apperr.ErrNotFound)
		case resp.StatusCode != http.StatusOK:
			resp.Body.Close()
			return nil, fmt.Errorf("%w: unexpected status code %d", apperr.ErrNetwork, resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %w", apperr.ErrNetwork, err)
		}
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: decode %s: %w", apperr.ErrNetwork, path, err)
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperr.ErrNotFound):
		return "not_found"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "rejected"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
