// Package github provides a lightweight read-only client for the GitHub REST API.
// Only the two organization endpoints the site needs are implemented.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

const acceptHeader = "application/vnd.github.v3+json"

// Organization is the subset of GET /orgs/{org} the site uses.
type Organization struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PublicRepos int    `json:"public_repos"`
}

// Repository is the subset of a repository record the site aggregates.
type Repository struct {
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	Private         bool   `json:"private"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	WatchersCount   int    `json:"watchers_count"`
}

// Client is the interface the statistics service depends on.
type Client interface {
	// GetOrganization fetches organization metadata.
	GetOrganization(ctx context.Context, org string) (*Organization, error)
	// ListOrgRepos fetches up to 100 repositories, most recently updated first.
	ListOrgRepos(ctx context.Context, org string) ([]Repository, error)
}

// ErrInvalidResponse is returned when a payload does not have the expected shape.
var ErrInvalidResponse = errors.New("github: invalid response format")

// RateLimitError is returned for HTTP 403, which GitHub uses for rate limiting.
type RateLimitError struct {
	// Reset is when the quota refills, from X-RateLimit-Reset. Nil if absent.
	Reset *time.Time
	// RetryAfter is the Retry-After header in seconds. Nil if absent.
	RetryAfter *int
}

func (e *RateLimitError) Error() string {
	if e.Reset != nil {
		return fmt.Sprintf("github: rate limited until %s", e.Reset.UTC().Format(time.RFC3339))
	}
	return "github: rate limited"
}

// APIError is returned for any other non-success status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("GitHub API error: %d (%s)", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("GitHub API error: %d", e.StatusCode)
}

// RealClient talks to the GitHub API over HTTP.
type RealClient struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a RealClient.
type Option func(*RealClient)

// WithBaseURL points the client at another API host (GitHub Enterprise, tests).
func WithBaseURL(u string) Option {
	return func(c *RealClient) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *RealClient) { c.httpClient = hc }
}

// NewClient creates a RealClient. A non-empty token is sent as a bearer
// credential, which raises the anonymous rate limit.
func NewClient(token string, opts ...Option) *RealClient {
	hc := &http.Client{Timeout: 15 * time.Second}
	if token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, hc)
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
		hc.Timeout = 15 * time.Second
	}
	c := &RealClient{baseURL: DefaultBaseURL, httpClient: hc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrganization calls GET /orgs/{org}.
func (c *RealClient) GetOrganization(ctx context.Context, org string) (*Organization, error) {
	var out Organization
	if err := c.get(ctx, "/orgs/"+url.PathEscape(org), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrgRepos calls GET /orgs/{org}/repos?per_page=100&sort=updated.
func (c *RealClient) ListOrgRepos(ctx context.Context, org string) ([]Repository, error) {
	var out []Repository
	if err := c.get(ctx, "/orgs/"+url.PathEscape(org)+"/repos?per_page=100&sort=updated", &out); err != nil {
		return nil, err
	}
	if out == nil {
		// A JSON null decodes without error but is not a repository list.
		return nil, ErrInvalidResponse
	}
	return out, nil
}

func (c *RealClient) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("github: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return rateLimitFromHeaders(resp.Header)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

func rateLimitFromHeaders(h http.Header) *RateLimitError {
	e := &RateLimitError{}
	if v := h.Get("X-RateLimit-Reset"); v != "" {
		if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
			t := time.Unix(secs, 0).UTC()
			e.Reset = &t
		}
	}
	if v := h.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			e.RetryAfter = &secs
		}
	}
	return e
}

func errorMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 64<<10)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}
