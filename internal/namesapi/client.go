// Package namesapi is the client side of the names REST API.
//
// Every call is a single attempt: there are no retries and no backoff.
// Failures come back as *TransportError, input that can never be sent comes
// back as *ValidationError without touching the network.
package namesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mrlokans/nameboard/internal/entities"
)

const (
	DefaultBaseURL = "http://localhost:5000/names"
	defaultTimeout = 10 * time.Second

	opList   = "list"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// Client talks to a names endpoint such as http://localhost:5000/names.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *Metrics
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithMetrics attaches Prometheus collectors to the client.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a client for the collection at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the collection URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListAll fetches the whole collection sorted case-insensitively by first name.
func (c *Client) ListAll(ctx context.Context) (names []entities.Name, err error) {
	defer c.track(opList, time.Now(), &err)

	resp, err := c.do(ctx, opList, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&names); err != nil {
		return nil, &TransportError{Op: opList, Err: fmt.Errorf("decode response: %w", err)}
	}
	if names == nil {
		names = []entities.Name{}
	}

	SortByFirstName(names)
	return names, nil
}

// Create posts a new, not-yet-liked name. The name is trimmed first and must
// not be empty.
func (c *Client) Create(ctx context.Context, firstName string) (created *entities.Name, err error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		err = &ValidationError{Field: "firstName", Reason: "must not be empty"}
		c.track(opCreate, time.Now(), &err)
		return nil, err
	}
	defer c.track(opCreate, time.Now(), &err)

	resp, err := c.do(ctx, opCreate, http.MethodPost, c.baseURL, createPayload{FirstName: firstName, Liked: false})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeRecord(resp.Body, opCreate)
}

// Update sends a partial update for id. A rename to an empty name is
// rejected before the request.
func (c *Client) Update(ctx context.Context, id string, patch entities.NamePatch) (updated *entities.Name, err error) {
	if verr := validateUpdate(id, patch); verr != nil {
		err = verr
		c.track(opUpdate, time.Now(), &err)
		return nil, err
	}
	defer c.track(opUpdate, time.Now(), &err)

	if patch.FirstName != nil {
		trimmed := strings.TrimSpace(*patch.FirstName)
		patch.FirstName = &trimmed
	}

	resp, err := c.do(ctx, opUpdate, http.MethodPut, c.recordURL(id), patch)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeRecord(resp.Body, opUpdate)
}

// Delete removes id from the collection.
func (c *Client) Delete(ctx context.Context, id string) (err error) {
	if strings.TrimSpace(id) == "" {
		err = &ValidationError{Field: "id", Reason: "must not be empty"}
		c.track(opDelete, time.Now(), &err)
		return err
	}
	defer c.track(opDelete, time.Now(), &err)

	resp, err := c.do(ctx, opDelete, http.MethodDelete, c.recordURL(id), nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

type createPayload struct {
	FirstName string `json:"firstName"`
	Liked     bool   `json:"liked"`
}

func validateUpdate(id string, patch entities.NamePatch) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if patch.IsEmpty() {
		return &ValidationError{Field: "patch", Reason: "no fields to update"}
	}
	if patch.FirstName != nil && strings.TrimSpace(*patch.FirstName) == "" {
		return &ValidationError{Field: "firstName", Reason: "must not be empty"}
	}
	return nil
}

func (c *Client) recordURL(id string) string {
	return c.baseURL + "/" + url.PathEscape(id)
}

// do performs one request and turns anything but a 2xx into a TransportError.
// The caller owns the returned body.
func (c *Client) do(ctx context.Context, op, method, target string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, &TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("request failed: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		cause := fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
		if resp.StatusCode == http.StatusNotFound {
			cause = fmt.Errorf("%w: %s", ErrNotFound, strings.TrimSpace(string(msg)))
		}
		return nil, &TransportError{Op: op, StatusCode: resp.StatusCode, Err: cause}
	}

	return resp, nil
}

func decodeRecord(r io.Reader, op string) (*entities.Name, error) {
	var name entities.Name
	if err := json.NewDecoder(r).Decode(&name); err != nil {
		// Empty body: callers resync after every mutation.
		if err == io.EOF {
			return nil, nil
		}
		return nil, &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return &name, nil
}

func (c *Client) track(op string, start time.Time, errp *error) {
	err := *errp
	c.metrics.observe(op, start, err)
	if err != nil {
		c.logger.Debug("names api call failed", "op", op, "error", err)
		return
	}
	c.logger.Debug("names api call", "op", op, "duration", time.Since(start))
}
