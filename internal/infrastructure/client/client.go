// Package client implements the external booking platform collaborators over
// HTTP. Every call carries the bearer credential explicitly and runs under a
// per-request timeout; non-2xx responses are mapped to domain.RemoteError
// with the server-provided message when one is present.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// Client is the shared HTTP transport for the booking platform API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a transport against the platform base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// errorBody is the platform's error envelope.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// doJSON performs one request. A nil body sends no payload; a non-nil out
// decodes the response into it.
func (c *Client) doJSON(ctx context.Context, method, path, credential string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("booking platform unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return remoteError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// remoteError maps a non-2xx response onto a domain.RemoteError.
func remoteError(resp *http.Response) error {
	var body errorBody
	message := ""
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Error != "" {
			message = body.Error
		} else {
			message = body.Message
		}
	}

	return &domain.RemoteError{StatusCode: resp.StatusCode, Message: message}
}
