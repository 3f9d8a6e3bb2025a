// Package apiclient is a typed client for the anirex REST API.
package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"anirex/internal/apperr"
	"anirex/internal/catalog"
	"anirex/internal/collection"
	"anirex/internal/identity"
	"anirex/internal/profile"
	"anirex/internal/review"

	"github.com/goccy/go-json"
)

const DefaultTimeout = 15 * time.Second

type Client struct {
	baseURL   string
	http      *http.Client
	identity  *identity.Cell
	userAgent string

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New returns a client for the API at baseURL. Sign-in and sign-out are
// published to cell.
func New(baseURL string, cell *identity.Cell, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: DefaultTimeout},
		identity:  cell,
		userAgent: "anirex-tui",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type tokenReply struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
	} `json:"user"`
}

func (c *Client) tokens() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

func (c *Client) setTokens(access, refresh string) {
	c.mu.Lock()
	c.accessToken, c.refreshToken = access, refresh
	c.mu.Unlock()
}

// do sends one request and decodes the data field of the envelope into out.
// A 401 on an authenticated call triggers one token refresh and a replay.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	err := c.send(ctx, method, path, body, out)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		return err
	}
	if _, refresh := c.tokens(); refresh == "" || strings.HasPrefix(path, "/v1/auth/") {
		return err
	}
	if refreshErr := c.refresh(ctx); refreshErr != nil {
		return err
	}
	return c.send(ctx, method, path, body, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access, _ := c.tokens(); access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, path, apperr.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode %s: %w", path, apperr.ErrNetwork)
	}
	if resp.StatusCode >= 400 || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code, apiErr.Message = env.Error.Code, env.Error.Message
		}
		return apiErr
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return nil
}

func (c *Client) refresh(ctx context.Context) error {
	_, refresh := c.tokens()
	var reply tokenReply
	if err := c.send(ctx, http.MethodPost, "/v1/auth/refresh", map[string]string{"refresh_token": refresh}, &reply); err != nil {
		c.setTokens("", "")
		c.identity.Clear()
		return err
	}
	c.setTokens(reply.AccessToken, reply.RefreshToken)
	return nil
}

func (c *Client) Register(ctx context.Context, email, password, displayName string) (identity.User, error) {
	var reply struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
	}
	err := c.do(ctx, http.MethodPost, "/v1/auth/register", map[string]string{
		"email":        email,
		"password":     password,
		"display_name": displayName,
	}, &reply)
	if err != nil {
		return identity.User{}, err
	}
	return identity.User{ID: reply.ID, Email: reply.Email, DisplayName: reply.DisplayName}, nil
}

// Login signs in and publishes the user to the identity cell.
func (c *Client) Login(ctx context.Context, email, password string, rememberMe bool) (identity.User, error) {
	var reply tokenReply
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", map[string]any{
		"email":       email,
		"password":    password,
		"remember_me": rememberMe,
	}, &reply)
	if err != nil {
		return identity.User{}, err
	}
	c.setTokens(reply.AccessToken, reply.RefreshToken)
	u := identity.User{ID: reply.User.ID, Email: reply.User.Email, DisplayName: reply.User.DisplayName}
	c.identity.Set(u)
	return u, nil
}

// Logout revokes the session server side. The local identity is cleared
// even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	access, refresh := c.tokens()
	defer func() {
		c.setTokens("", "")
		c.identity.Clear()
	}()
	if access == "" {
		return nil
	}
	return c.send(ctx, http.MethodPost, "/v1/auth/logout", map[string]string{"refresh_token": refresh}, nil)
}

func (c *Client) Me(ctx context.Context) (identity.User, error) {
	var reply struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/me", nil, &reply); err != nil {
		return identity.User{}, err
	}
	return identity.User{ID: reply.ID, Email: reply.Email, DisplayName: reply.DisplayName}, nil
}

func (c *Client) Feed(ctx context.Context, cat catalog.Category, page int) ([]catalog.Item, error) {
	var items []catalog.Item
	path := "/v1/feeds/" + url.PathEscape(string(cat)) + "?page=" + strconv.Itoa(page)
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Search(ctx context.Context, q catalog.Query, page int) ([]catalog.Item, error) {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	if q.Text != "" {
		v.Set("q", q.Text)
	}
	if q.GenreID > 0 {
		v.Set("genre", strconv.Itoa(q.GenreID))
	}
	if q.MinScore > 0 {
		v.Set("min_score", strconv.FormatFloat(q.MinScore, 'f', -1, 64))
	}
	if q.Year > 0 {
		v.Set("year", strconv.Itoa(q.Year))
	}

	var items []catalog.Item
	if err := c.do(ctx, http.MethodGet, "/v1/anime?"+v.Encode(), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Anime(ctx context.Context, id string) (catalog.Item, error) {
	var item catalog.Item
	err := c.do(ctx, http.MethodGet, "/v1/anime/"+url.PathEscape(id), nil, &item)
	return item, err
}

func (c *Client) Reviews(ctx context.Context, itemID string) (review.Listing, error) {
	var listing review.Listing
	err := c.do(ctx, http.MethodGet, "/v1/anime/"+url.PathEscape(itemID)+"/reviews", nil, &listing)
	return listing, err
}

func (c *Client) SubmitReview(ctx context.Context, itemID, text string, rating float64) (review.Entry, error) {
	var e review.Entry
	err := c.do(ctx, http.MethodPost, "/v1/anime/"+url.PathEscape(itemID)+"/reviews", map[string]any{
		"text":   text,
		"rating": rating,
	}, &e)
	return e, err
}

func (c *Client) Collection(ctx context.Context, kind collection.Kind) ([]collection.Entry, error) {
	var entries []collection.Entry
	if err := c.do(ctx, http.MethodGet, "/v1/me/"+string(kind), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) AddToCollection(ctx context.Context, kind collection.Kind, itemID string) error {
	return c.do(ctx, http.MethodPut, "/v1/me/"+string(kind)+"/"+url.PathEscape(itemID), nil, nil)
}

func (c *Client) RemoveFromCollection(ctx context.Context, kind collection.Kind, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/me/"+string(kind)+"/"+url.PathEscape(itemID), nil, nil)
}

func (c *Client) Profile(ctx context.Context) (profile.Profile, error) {
	var p profile.Profile
	err := c.do(ctx, http.MethodGet, "/v1/me/profile", nil, &p)
	return p, err
}

func (c *Client) UpdateProfile(ctx context.Context, cmd profile.UpdateCommand) (profile.Profile, error) {
	var p profile.Profile
	err := c.do(ctx, http.MethodPatch, "/v1/me/profile", cmd, &p)
	return p, err
}
