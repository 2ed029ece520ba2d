package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/foodhub/internal/common"
	"github.com/dmitrijs2005/foodhub/internal/logging"
	"github.com/google/uuid"
)

// ErrEmptyBaseURL is returned by NewHTTPClient when no base URL is given.
var ErrEmptyBaseURL = errors.New("empty base url")

// Client is the FoodHub backend API as the screens use it.
type Client interface {
	Food(ctx context.Context) Result[[]string]
	SignUp(ctx context.Context, req SignUpRequest) Result[AuthResponse]
	SignIn(ctx context.Context, req SignInRequest) Result[AuthResponse]
	OAuth(ctx context.Context, req OAuthRequest) Result[AuthResponse]
}

// HTTPClient talks JSON over HTTP to a single base URL. It adds no retries
// and no auth headers; a request id is attached for correlation only.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	logger  logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the transport (default: http.DefaultClient).
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.logger = l }
}

func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrEmptyBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base url scheme %q", u.Scheme)
	}

	c := &HTTPClient{baseURL: u, http: http.DefaultClient, logger: logging.Discard()}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *HTTPClient) Food(ctx context.Context) Result[[]string] {
	return call[[]string](ctx, c, http.MethodGet, "/food", nil)
}

func (c *HTTPClient) SignUp(ctx context.Context, req SignUpRequest) Result[AuthResponse] {
	return call[AuthResponse](ctx, c, http.MethodPost, "/auth/signup", req)
}

func (c *HTTPClient) SignIn(ctx context.Context, req SignInRequest) Result[AuthResponse] {
	return call[AuthResponse](ctx, c, http.MethodPost, "/auth/login", req)
}

func (c *HTTPClient) OAuth(ctx context.Context, req OAuthRequest) Result[AuthResponse] {
	return call[AuthResponse](ctx, c, http.MethodPost, "/auth/oauth", req)
}

func call[T any](ctx context.Context, c *HTTPClient, method, path string, body any) Result[T] {
	reqID := uuid.NewString()
	res := SafeCall[T](func() (*http.Response, error) {
		req, err := c.newRequest(ctx, method, path, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set(common.RequestIDHeader, reqID)
		return c.http.Do(req)
	})

	c.logger.Debug(ctx, "api call finished",
		"method", method, "path", path, "request_id", reqID,
		"outcome", res.Outcome.String(), "status", res.Code)
	if res.Outcome == OutcomeException {
		c.logger.Warn(ctx, "api call failed", "path", path, "request_id", reqID, "error", res.Err)
	}
	return res
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	u := c.baseURL.JoinPath(path)

	var buf *bytes.Buffer
	if body != nil {
		buf = &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
	}

	var req *http.Request
	var err error
	if buf != nil {
		req, err = http.NewRequestWithContext(ctx, method, u.String(), buf)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u.String(), nil)
	}
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
