// Package buildhook posts rebuild notifications to a static site host.
package buildhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Client delivers JSON build notifications, retrying transient failures.
type Client struct {
	http       *http.Client
	timeout    time.Duration
	maxRetries uint64
}

func NewClient(timeout time.Duration, maxRetries uint64) *Client {
	return &Client{
		http:       &http.Client{},
		timeout:    timeout,
		maxRetries: maxRetries,
	}
}

// NewClientWithHTTP sends through hc, for hosts that need a custom transport or TLS roots.
func NewClientWithHTTP(hc *http.Client, timeout time.Duration, maxRetries uint64) *Client {
	c := NewClient(timeout, maxRetries)
	if hc != nil {
		c.http = hc
	}
	return c
}

// Post sends body as JSON. 4xx responses other than 408 and 429 are not retried.
func (c *Client) Post(ctx context.Context, url string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal build hook payload: %w", err)
	}

	attempt := 0
	op := func() error {
		attempt++
		status, err := c.send(ctx, url, payload)
		if err == nil {
			return nil
		}
		slog.Warn("build hook attempt failed", "attempt", attempt, "status", status, "error", err)
		if status >= 400 && status < 500 && status != http.StatusRequestTimeout && status != http.StatusTooManyRequests {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return fmt.Errorf("build hook delivery failed after %d attempts: %w", attempt, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, url string, payload []byte) (int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("build hook request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("build hook returned status %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}
