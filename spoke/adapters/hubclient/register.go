// Package hubclient registers the spoke with its hub.
package hubclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lgsmfleet/helpers"
)

// Registration is the body of POST /spokes on the hub.
type Registration struct {
	Name   string `json:"name"`
	IP     string `json:"ip"`
	Port   int    `json:"port"`
	APIKey string `json:"api_key"`
}

// Client talks to the hub API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a hub client. Panics on empty baseURL or nil client.
func NewClient(baseURL, apiKey string, client *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(helpers.StrPanic(baseURL, "hubclient.register.go: baseURL is required"), "/"),
		apiKey:  apiKey,
		client:  helpers.NilPanic(client, "hubclient.register.go: http client is required"),
	}
}

// Register performs POST baseURL/spokes with a 5s timeout. The hub upserts by address,
// so calling it on every start is safe.
//
// Returns: nil on 200/201; error on request failure or any other status.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	body, err := json.Marshal(reg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/spokes", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("hub register returned %d", resp.StatusCode)
	}
	return nil
}

// RegisterWithRetry retries Register with linear backoff until it succeeds,
// attempts are exhausted or ctx is done.
func (c *Client) RegisterWithRetry(ctx context.Context, reg Registration, attempts int, backoff time.Duration) error {
	var err error
	for i := 1; i <= attempts; i++ {
		if err = c.Register(ctx, reg); err == nil {
			return nil
		}
		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(i) * backoff):
		}
	}
	return fmt.Errorf("register with hub after %d attempts: %w", attempts, err)
}
