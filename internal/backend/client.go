package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/zealcatalyst/zeal-client/internal/logger"
)

// TokenSource supplies the current bearer token, or "" when no session
// is active. The session store implements it; endpoint functions never
// attach authentication themselves.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// ClientConfig holds configuration for the HTTP client wrapper
type ClientConfig struct {
	// ReadTimeout is used for GET requests
	ReadTimeout time.Duration
	// WriteTimeout is used for POST, PUT, PATCH, DELETE requests
	WriteTimeout time.Duration
}

// DefaultClientConfig returns sensible defaults
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}

// Client is the centralized HTTP wrapper every endpoint group goes
// through. It:
// 1. Attaches the bearer token from the TokenSource
// 2. Injects X-Request-Id for correlation
// 3. Enforces timeouts based on HTTP method (read vs write)
// 4. Maps non-2xx responses and transport failures to typed errors
// 5. Logs requests with duration and status
type Client struct {
	baseURL    string
	tokens     TokenSource
	baseClient *http.Client
	config     ClientConfig
}

func NewClient(baseURL string, tokens TokenSource, config ClientConfig) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		baseClient: &http.Client{
			// No global timeout - per-request timeouts below
			Timeout: 0,
		},
		config: config,
	}
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, req *http.Request, out interface{}) error {
	reqID := logger.GetRequestID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set("X-Request-Id", reqID)

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	timeout := c.config.ReadTimeout
	if isWriteMethod(req.Method) {
		timeout = c.config.WriteTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	req = req.WithContext(ctx)

	log := logger.Log.With().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", reqID).
		Logger()

	start := time.Now()
	resp, err := c.baseClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Warn().Err(err).Dur("duration", duration).Msg("backend_request_failed")
		return c.mapError(err)
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Dur("duration", duration).Msg("backend_request_completed")

	// 401 and 404 match their sentinels through StatusError.Is, so the
	// backend's detail message survives alongside errors.Is checks.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapError converts low-level errors to typed errors
func (c *Client) mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	if errors.Is(err, context.Canceled) {
		return ErrTimeout
	}
	// Connection refused, DNS errors, etc.
	return ErrUnavailable
}

func isWriteMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.url(path, query), nil)
	if err != nil {
		return err
	}
	return c.do(ctx, req, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out interface{}) error {
	return c.sendWithHeaders(ctx, method, path, body, out, nil)
}

// sendIdempotent is send plus a fresh Idempotency-Key header, for
// writes the backend must not apply twice.
func (c *Client) sendIdempotent(ctx context.Context, method, path string, body, out interface{}) error {
	return c.sendWithHeaders(ctx, method, path, body, out, map[string]string{
		"Idempotency-Key": uuid.NewString(),
	})
}

func (c *Client) sendWithHeaders(ctx context.Context, method, path string, body, out interface{}, headers map[string]string) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.url(path, nil), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.do(ctx, req, out)
}

// upload posts a multipart form with one file part plus optional text
// fields. The whole file is buffered; uploads here are avatars and
// teaching materials, not bulk data.
func (c *Client) upload(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file io.Reader, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.url(path, nil), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(ctx, req, out)
}
