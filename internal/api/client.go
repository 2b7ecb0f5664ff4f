// Package api is the thin fetch layer over the essay-material backend. It
// does exactly what the UI asks: no retry, no auth, no client-side timeout.
// A request that has been started always runs to completion or failure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"zhibi-tui/internal/pkg/logger"
)

// ErrNotFound covers every non-2xx answer to a single-document GET; the
// detail view treats them all as "document gone".
var ErrNotFound = errors.New("document not found")

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     logger.ILogger
}

func NewClient(baseURL string, log logger.ILogger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
		Log:     log,
	}
}

// doJSON issues one request with an optional JSON body and decodes the
// response into out when out is non-nil. Non-2xx statuses become errors
// carrying the status and response body.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewBuffer(payloadBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: status %d, body: %s", method, path, resp.StatusCode, string(bodyBytes))
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}
