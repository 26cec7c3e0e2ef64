// Package client talks to the REST API the way the dashboard does: it logs
// in once, pushes readings, and polls the query endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"liyu1981.xyz/cattle-health-service/pkg/health"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx answer. Message carries the server's "error" field
// when it sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error any `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&payload) == nil && payload.Error != nil {
			if s, ok := payload.Error.(string); ok {
				apiErr.Message = s
			} else {
				raw, _ := json.Marshal(payload.Error)
				apiErr.Message = string(raw)
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login exchanges credentials for a token and keeps it for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var s session
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	}, &s)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = s.Token
	c.mu.Unlock()
	return s.User, nil
}

type insertResponse struct {
	InsertedID uint `json:"insertedId"`
}

func (c *Client) PostTemperature(ctx context.Context, cowID uint, temperature float64) (uint, error) {
	var resp insertResponse
	err := c.do(ctx, http.MethodPost, "/api/temperature", nil, map[string]any{
		"cow_id":      cowID,
		"temperature": temperature,
	}, &resp)
	return resp.InsertedID, err
}

func (c *Client) PostActivity(ctx context.Context, cowID uint, x, y, z float64) (uint, error) {
	var resp insertResponse
	err := c.do(ctx, http.MethodPost, "/api/activity", nil, map[string]any{
		"cow_id":  cowID,
		"accel_x": x,
		"accel_y": y,
		"accel_z": z,
	}, &resp)
	return resp.InsertedID, err
}

func (c *Client) ListCows(ctx context.Context) ([]models.Cow, error) {
	var cows []models.Cow
	if err := c.do(ctx, http.MethodGet, "/api/cows", nil, nil, &cows); err != nil {
		return nil, err
	}
	return cows, nil
}

func sensorPath(sensor models.SensorType, cowID uint, endpoint string) string {
	return fmt.Sprintf("/api/%s/%d/%s", sensor, cowID, endpoint)
}

func (c *Client) Latest(ctx context.Context, sensor models.SensorType, cowID uint) (*models.ReadingView, error) {
	var view models.ReadingView
	if err := c.do(ctx, http.MethodGet, sensorPath(sensor, cowID, "latest"), nil, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) Status(ctx context.Context, sensor models.SensorType, cowID uint) (*health.SensorStatus, error) {
	var status health.SensorStatus
	if err := c.do(ctx, http.MethodGet, sensorPath(sensor, cowID, "status"), nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

type HistoryOptions struct {
	Limit     int
	Offset    int
	StartDate string
	EndDate   string
}

func (o HistoryOptions) values() url.Values {
	q := url.Values{}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		q.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.StartDate != "" {
		q.Set("startDate", o.StartDate)
	}
	if o.EndDate != "" {
		q.Set("endDate", o.EndDate)
	}
	return q
}

func (c *Client) History(ctx context.Context, sensor models.SensorType, cowID uint, opts HistoryOptions) (*models.HistoryPage, error) {
	var page models.HistoryPage
	if err := c.do(ctx, http.MethodGet, sensorPath(sensor, cowID, "history"), opts.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
