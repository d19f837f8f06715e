package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	v1 "github.com/avatar-tools/logscan/api/v1"
	"github.com/avatar-tools/logscan/internal/models"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

const maxAttempts = 3

// Client talks to a running logscan server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithToken sends token as a bearer token on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q", baseURL)
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/") + "/api/v1",
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		log:        zap.S().Named("client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Avatars lists the avatars of the server's log folder
// GET /api/v1/avatars
func (c *Client) Avatars(ctx context.Context) ([]string, error) {
	var list v1.AvatarList
	if err := c.do(ctx, http.MethodGet, "/avatars", nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Avatars, nil
}

// Timestamps lists the stats dumps of avatar, most recent first
// GET /api/v1/avatars/{name}/stats
func (c *Client) Timestamps(ctx context.Context, avatar string) ([]int64, error) {
	var list v1.StatsTimestampList
	if err := c.do(ctx, http.MethodGet, "/avatars/"+url.PathEscape(avatar)+"/stats", nil, nil, &list); err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(list.Timestamps))
	for _, t := range list.Timestamps {
		out = append(out, t.Timestamp)
	}
	return out, nil
}

// Stats fetches one stats dump
// GET /api/v1/avatars/{name}/stats/{ts}
func (c *Client) Stats(ctx context.Context, avatar string, ts int64) (*models.Stats, error) {
	var stats v1.Stats
	path := "/avatars/" + url.PathEscape(avatar) + "/stats/" + strconv.FormatInt(ts, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &stats); err != nil {
		return nil, err
	}

	var text strings.Builder
	for _, f := range stats.Fields {
		fmt.Fprintf(&text, " %s: %s", f.Name, f.Value)
	}
	return &models.Stats{Avatar: stats.Avatar, Timestamp: stats.Timestamp, Text: text.String()}, nil
}

// Search searches the chat logs of avatar
// GET /api/v1/avatars/{name}/search
func (c *Client) Search(ctx context.Context, avatar string, search models.Search) (*models.SearchResult, error) {
	query := url.Values{"q": {search.String()}}
	if search.IsRegex() {
		query.Set("regex", "true")
	}

	var result v1.SearchResult
	if err := c.do(ctx, http.MethodGet, "/avatars/"+url.PathEscape(avatar)+"/search", query, nil, &result); err != nil {
		return nil, err
	}
	return &models.SearchResult{
		Avatar:    result.Avatar,
		Term:      result.Term,
		Text:      result.Text,
		Truncated: result.Truncated,
	}, nil
}

// Notes returns the notes of avatar
// GET /api/v1/avatars/{name}/notes
func (c *Client) Notes(ctx context.Context, avatar string) (*models.Notes, error) {
	var n v1.Notes
	if err := c.do(ctx, http.MethodGet, "/avatars/"+url.PathEscape(avatar)+"/notes", nil, nil, &n); err != nil {
		return nil, err
	}
	return &models.Notes{Avatar: n.Avatar, Text: n.Text, CreatedAt: n.CreatedAt, UpdatedAt: n.UpdatedAt}, nil
}

// SetNotes replaces the notes of avatar
// PUT /api/v1/avatars/{name}/notes
func (c *Client) SetNotes(ctx context.Context, avatar, text string) error {
	return c.do(ctx, http.MethodPut, "/avatars/"+url.PathEscape(avatar)+"/notes", nil, v1.NotesUpdate{Text: text}, nil)
}

// Settings returns the server's selected folder and avatar
// GET /api/v1/settings
func (c *Client) Settings(ctx context.Context) (*models.Settings, error) {
	var s v1.Settings
	if err := c.do(ctx, http.MethodGet, "/settings", nil, nil, &s); err != nil {
		return nil, err
	}
	return &models.Settings{LogFolder: s.LogFolder, Avatar: s.Avatar}, nil
}

// Export downloads the xlsx stats history of avatar into w
// GET /api/v1/avatars/{name}/export
func (c *Client) Export(ctx context.Context, avatar string, w io.Writer) error {
	data, err := c.send(ctx, http.MethodGet, "/avatars/"+url.PathEscape(avatar)+"/export", nil, nil)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// do sends the request and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	data, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// send returns the response body. Connection failures and 5xx responses are
// retried; other failures are returned as pkg/errors types.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, err
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	return backoff.Retry(ctx, func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(payload))
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.log.Debugw("request failed", "method", method, "url", target, "error", err)
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode >= 500:
			return nil, fmt.Errorf("%s %s: %s", method, path, resp.Status)
		case resp.StatusCode >= 400:
			return nil, backoff.Permanent(statusError(resp.StatusCode, data))
		}
		return data, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(maxAttempts))
}

func statusError(status int, body []byte) error {
	var apiErr v1.Error
	msg := http.StatusText(status)
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		msg = apiErr.Error
	}

	switch status {
	case http.StatusNotFound:
		return srvErrors.NewNotFoundError(msg)
	case http.StatusBadRequest:
		return srvErrors.NewInvalidArgumentError("%s", msg)
	case http.StatusUnauthorized:
		return srvErrors.NewUnauthorizedError(msg)
	default:
		return fmt.Errorf("unexpected status %d: %s", status, msg)
	}
}
