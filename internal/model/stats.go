package model

import "time"

// Defaults shown when the organization metadata is missing or unavailable.
const (
	DefaultOrgName        = "Nexora DevLabs"
	DefaultOrgDescription = "Simplifying technology to build innovative solutions"
)

// RepositoryStatistics aggregates the public face of the GitHub organization.
//
// A value is always renderable: rate limiting yields a degraded value with
// RateLimited set, and any other failure yields Error with a Message. Both
// carry placeholder counts (one public repository) instead of an empty state.
type RepositoryStatistics struct {
	TotalStars     int       `json:"totalStars"`
	TotalForks     int       `json:"totalForks"`
	TotalWatchers  int       `json:"totalWatchers"`
	TotalRepos     int       `json:"totalRepos"`
	PublicRepos    int       `json:"publicRepos"`
	PrivateRepos   int       `json:"privateRepos"`
	LastUpdated    time.Time `json:"lastUpdated"`
	OrgName        string    `json:"orgName"`
	OrgDescription string    `json:"orgDescription"`

	RateLimited    bool       `json:"rateLimited"`
	RateLimitReset *time.Time `json:"rateLimitReset,omitempty"`
	// RetryAfter is in seconds, copied from the Retry-After header.
	RetryAfter *int `json:"retryAfter,omitempty"`

	Error   bool   `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Degraded reports whether the value is a placeholder rather than real counts.
func (s RepositoryStatistics) Degraded() bool {
	return s.RateLimited || s.Error
}
