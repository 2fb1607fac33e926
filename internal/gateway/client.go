package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"marketplace-client/internal/marketerrors"
	"marketplace-client/utils"
)

// Client talks to the remote marketplace gateway. The gateway is
// authoritative for all entity state: every local validation result is
// provisional until one of these calls confirms it.
//
// Calls are never retried; a failed call surfaces its error and leaves local
// state unchanged.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a gateway client for the API rooted at baseURL
// (e.g. https://api.noroff.dev/api/v1).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		// The hosted API throttles aggressively; keep CLI loops polite.
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 5),
	}
}

// NewClientWithHTTP is like NewClient but with a caller-supplied http.Client,
// used by tests to point at a local fake gateway.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	c := NewClient(baseURL)
	c.http = hc
	return c
}

// errorEnvelope is the gateway's rejection body shape. The status code alone
// decides failure; the body only supplies the human-readable message.
type errorEnvelope struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
	Status any `json:"status"`
}

// do executes one request against the gateway. A non-2xx response always
// becomes a *marketerrors.GatewayError regardless of body shape.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("gateway: rate limit wait: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := utils.GenerateID()
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	utils.Debug("gateway request", map[string]any{
		"request_id": requestID,
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode,
		"latency":    time.Since(start).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.rejection(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gateway: decode %s %s response: %w", method, path, err)
	}
	return nil
}

// rejection converts a non-2xx response into a GatewayError, pulling the
// message out of the error envelope when the body has one.
func (c *Client) rejection(resp *http.Response) error {
	message := http.StatusText(resp.StatusCode)

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(data) > 0 {
		var envelope errorEnvelope
		if json.Unmarshal(data, &envelope) == nil && len(envelope.Errors) > 0 && envelope.Errors[0].Message != "" {
			message = envelope.Errors[0].Message
		}
	}

	return &marketerrors.GatewayError{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}

// ListParams controls pagination for listing and venue retrieval.
type ListParams struct {
	Limit  int
	Offset int
}

func (p ListParams) query() string {
	q := ""
	if p.Limit > 0 {
		q = fmt.Sprintf("limit=%d", p.Limit)
	}
	if p.Offset > 0 {
		if q != "" {
			q += "&"
		}
		q += fmt.Sprintf("offset=%d", p.Offset)
	}
	return q
}
