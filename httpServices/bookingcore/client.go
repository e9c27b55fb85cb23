package bookingcore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"moveflow/config"
	"moveflow/utils"

	"go.uber.org/zap"
)

// Client is a typed HTTP client for the external booking/commerce backend.
// It only classifies outcomes; retry decisions belong to the callers.
type Client struct {
	BaseURL      string
	CompanyLogin string
	APIKey       string
	HTTPClient   *http.Client
	Logger       *zap.Logger
}

// NewClient builds a client from the loaded application config.
func NewClient() *Client {
	return &Client{
		BaseURL:      config.AppConfig.BookingAPIBaseURL,
		CompanyLogin: config.AppConfig.BookingCompany,
		APIKey:       config.AppConfig.BookingAPIKey,
		HTTPClient:   &http.Client{Timeout: 15 * time.Second},
		Logger:       utils.GetLogger(),
	}
}

type apiError struct {
	Message string `json:"message"`
}

// do performs one request and decodes the JSON response into out (when out is
// non-nil). 404 maps to NotFoundError, network failures and 5xx responses map
// to TransportError.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Company-Login", c.CompanyLogin)
	req.Header.Set("X-Api-Key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewTransportError(fmt.Sprintf("request to %s failed", path), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return NewNotFoundError(fmt.Sprintf("%s returned 404", path))
	case resp.StatusCode >= 500:
		return NewTransportError(fmt.Sprintf("%s returned %d", path, resp.StatusCode), nil)
	case resp.StatusCode >= 400:
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("booking backend rejected %s: %s", path, apiErr.Message)
		}
		return fmt.Errorf("booking backend rejected %s with status %d", path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewTransportError(fmt.Sprintf("failed to decode %s response", path), err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}
