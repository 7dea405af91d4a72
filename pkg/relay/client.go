// Package relay is a client for the site's contact relay endpoint.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nexoradevlabs/site/internal/model"
	"github.com/nexoradevlabs/site/pkg/mail"
)

// Error is a non-2xx response from the relay.
type Error struct {
	StatusCode int
	Message    string `json:"error"`
	Details    string `json:"details"`
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// HTTPClient calls the site's public API over HTTP.
type HTTPClient struct {
	Base string
	HTTP *http.Client
}

// NewHTTP creates a client for the site at base, e.g. http://localhost:8080.
func NewHTTP(base string) *HTTPClient {
	return &HTTPClient{
		Base: strings.TrimRight(base, "/"),
		HTTP: &http.Client{Timeout: 30 * time.Second},
	}
}

type submitResponse struct {
	Success bool         `json:"success"`
	Result  *mail.Result `json:"result"`
}

// Submit posts a contact submission to /api/contact.
func (c *HTTPClient) Submit(ctx context.Context, sub model.ContactSubmission) (*mail.Result, error) {
	b, err := json.Marshal(sub)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+"/api/contact", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contact relay: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("contact relay: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		relayErr := &Error{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(body, relayErr)
		return nil, relayErr
	}

	var out submitResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("contact relay: decode response: %w", err)
	}
	if !out.Success {
		return nil, fmt.Errorf("contact relay: unsuccessful response")
	}
	return out.Result, nil
}

// Stats fetches the server's cached repository statistics.
func (c *HTTPClient) Stats(ctx context.Context, retry bool) (model.RepositoryStatistics, error) {
	var out model.RepositoryStatistics
	method, path := http.MethodGet, "/api/github/stats"
	if retry {
		method, path = http.MethodPost, "/api/github/stats/retry"
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, nil)
	if err != nil {
		return out, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return out, fmt.Errorf("stats: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("stats failed: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("stats: %w", err)
	}
	return out, nil
}
