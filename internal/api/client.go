package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"mwadmin/internal/models"
	"mwadmin/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client is the single point through which every backend call passes.
// It attaches the stored session token as a bearer header, carries a
// cookie jar so both credential mechanisms travel, and intercepts 401
// responses by clearing the session and returning ErrSessionExpired.
// The caller decides what "force sign-out" means; the client never
// navigates anywhere.
type Client struct {
	// Base URL of the API server
	BaseURL string

	client *http.Client

	session *session.Store

	log zerolog.Logger
}

// NewClient creates a new API client
func NewClient(baseURL string, store *session.Store, logger zerolog.Logger) *Client {
	jar, err := cookiejar.New(nil)
	if err != nil {
		// cookiejar.New only fails on bad options; fall back to jarless
		logger.Warn().Err(err).Msg("cookie jar unavailable")
	}

	return &Client{
		BaseURL: baseURL,
		session: store,
		log:     logger,
		client: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}
}

// IsAuthenticated reports whether a session token is stored. Presence
// only; the backend is the sole authority on validity.
func (c *Client) IsAuthenticated() bool {
	return c.session.IsPresent()
}

// ClearSession drops the stored session token.
func (c *Client) ClearSession() error {
	return c.session.Clear()
}

// Token returns the stored session token, if any.
func (c *Client) Token() (string, error) {
	return c.session.Get()
}

// do performs one backend call and returns the raw response body.
// Non-2xx statuses come back as *models.APIError carrying the
// backend's status and message. A 401 on a request that carried a
// token clears the session exactly once and returns
// models.ErrSessionExpired; a 401 on an unauthenticated request (the
// login path) is an ordinary API error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload interface{}) ([]byte, error) {
	reqURL := c.BaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("error marshalling request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	authenticated := false
	if c.session.IsPresent() {
		token, err := c.session.Get()
		if err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			authenticated = true
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error().
			Str("method", method).
			Str("url", path).
			Str("request_id", requestID).
			Err(err).
			Msg("request failed")
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn().Err(err).Msg("failed to close response body")
		}
	}(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && authenticated {
		c.log.Warn().
			Str("method", method).
			Str("url", path).
			Str("request_id", requestID).
			Msg("401 unauthorized, clearing session")
		if err := c.session.Clear(); err != nil {
			c.log.Error().Err(err).Msg("failed to clear session")
		}
		return nil, models.ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &models.APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(respBody),
			Path:       path,
		}
		c.log.Error().
			Int("status", apiErr.StatusCode).
			Str("message", apiErr.Message).
			Str("url", path).
			Str("request_id", requestID).
			Msg("api error")
		return nil, apiErr
	}

	return respBody, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, payload)
}

func (c *Client) patch(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, nil, payload)
}

func (c *Client) delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
