package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nexoradevlabs/site/internal/model"
	"github.com/nexoradevlabs/site/pkg/github"
)

// ---------------------------------------------------------------------------
// mockGitHubClient
// ---------------------------------------------------------------------------

type mockGitHubClient struct {
	orgFunc   func(ctx context.Context, org string) (*github.Organization, error)
	reposFunc func(ctx context.Context, org string) ([]github.Repository, error)
	calls     []string
}

func (m *mockGitHubClient) GetOrganization(ctx context.Context, org string) (*github.Organization, error) {
	m.calls = append(m.calls, "org")
	if m.orgFunc != nil {
		return m.orgFunc(ctx, org)
	}
	return &github.Organization{Login: org}, nil
}

func (m *mockGitHubClient) ListOrgRepos(ctx context.Context, org string) ([]github.Repository, error) {
	m.calls = append(m.calls, "repos")
	if m.reposFunc != nil {
		return m.reposFunc(ctx, org)
	}
	return []github.Repository{}, nil
}

var fixedNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func newTestStatsService(client github.Client) *statsServiceImpl {
	svc := NewStatsService(client, "NexoraDevLabs").(*statsServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestStatsService_Fetch_Aggregates(t *testing.T) {
	client := &mockGitHubClient{
		reposFunc: func(ctx context.Context, org string) ([]github.Repository, error) {
			return []github.Repository{
				{StargazersCount: 3, ForksCount: 1, WatchersCount: 2, Private: false},
				{StargazersCount: 5, ForksCount: 0, WatchersCount: 4, Private: true},
			}, nil
		},
	}
	stats := newTestStatsService(client).Fetch(context.Background())

	if stats.TotalStars != 8 || stats.TotalForks != 1 || stats.TotalWatchers != 6 {
		t.Errorf("unexpected sums: %+v", stats)
	}
	if stats.PublicRepos != 1 || stats.PrivateRepos != 1 || stats.TotalRepos != 2 {
		t.Errorf("unexpected repo counts: %+v", stats)
	}
	if stats.Degraded() {
		t.Error("expected a non-degraded result")
	}
	if stats.OrgName != model.DefaultOrgName {
		t.Errorf("expected default org name, got %q", stats.OrgName)
	}
	if !stats.LastUpdated.Equal(fixedNow) {
		t.Errorf("expected lastUpdated=%s, got %s", fixedNow, stats.LastUpdated)
	}
	if len(client.calls) != 2 || client.calls[0] != "org" || client.calls[1] != "repos" {
		t.Errorf("expected org then repos, got %v", client.calls)
	}
}

func TestStatsService_Fetch_UsesOrgMetadata(t *testing.T) {
	client := &mockGitHubClient{
		orgFunc: func(ctx context.Context, org string) (*github.Organization, error) {
			return &github.Organization{Name: "Nexora", Description: "We build"}, nil
		},
	}
	stats := newTestStatsService(client).Fetch(context.Background())
	if stats.OrgName != "Nexora" || stats.OrgDescription != "We build" {
		t.Errorf("unexpected org metadata: %+v", stats)
	}
	if stats.TotalRepos != 0 {
		t.Errorf("expected 0 repos for empty list, got %d", stats.TotalRepos)
	}
}

func TestStatsService_Fetch_RateLimitedOnOrg(t *testing.T) {
	reset := time.Unix(1767323045, 0).UTC()
	retry := 60
	client := &mockGitHubClient{
		orgFunc: func(ctx context.Context, org string) (*github.Organization, error) {
			return nil, &github.RateLimitError{Reset: &reset, RetryAfter: &retry}
		},
	}
	stats := newTestStatsService(client).Fetch(context.Background())

	assertRateLimitedFallback(t, stats)
	if stats.RateLimitReset == nil || !stats.RateLimitReset.Equal(reset) {
		t.Errorf("expected reset copied, got %v", stats.RateLimitReset)
	}
	if stats.RetryAfter == nil || *stats.RetryAfter != 60 {
		t.Errorf("expected retryAfter=60, got %v", stats.RetryAfter)
	}
	if len(client.calls) != 1 {
		t.Errorf("expected the repo list not to be requested, got %v", client.calls)
	}
}

func TestStatsService_Fetch_RateLimitedOnRepos(t *testing.T) {
	client := &mockGitHubClient{
		reposFunc: func(ctx context.Context, org string) ([]github.Repository, error) {
			return nil, &github.RateLimitError{}
		},
	}
	stats := newTestStatsService(client).Fetch(context.Background())

	assertRateLimitedFallback(t, stats)
	if stats.RateLimitReset != nil || stats.RetryAfter != nil {
		t.Error("expected no reset info when headers are absent")
	}
}

func assertRateLimitedFallback(t *testing.T, stats model.RepositoryStatistics) {
	t.Helper()
	if !stats.RateLimited {
		t.Fatal("expected rateLimited=true")
	}
	if stats.Error {
		t.Error("rate limiting must not be reported as an error")
	}
	if stats.TotalStars != 0 || stats.TotalForks != 0 || stats.TotalWatchers != 0 {
		t.Errorf("expected zeroed counts, got %+v", stats)
	}
	if stats.TotalRepos != 1 {
		t.Errorf("expected placeholder totalRepos=1, got %d", stats.TotalRepos)
	}
}

func TestStatsService_Fetch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		client  *mockGitHubClient
		wantMsg string
	}{
		{
			name: "non-403 status",
			client: &mockGitHubClient{orgFunc: func(ctx context.Context, org string) (*github.Organization, error) {
				return nil, &github.APIError{StatusCode: 500}
			}},
			wantMsg: "GitHub API error: 500",
		},
		{
			name: "malformed repo list",
			client: &mockGitHubClient{reposFunc: func(ctx context.Context, org string) ([]github.Repository, error) {
				return nil, github.ErrInvalidResponse
			}},
			wantMsg: github.ErrInvalidResponse.Error(),
		},
		{
			name: "network failure",
			client: &mockGitHubClient{orgFunc: func(ctx context.Context, org string) (*github.Organization, error) {
				return nil, errors.New("dial tcp: connection refused")
			}},
			wantMsg: "dial tcp: connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := newTestStatsService(tt.client).Fetch(context.Background())
			if !stats.Error || stats.RateLimited {
				t.Fatalf("expected error result, got %+v", stats)
			}
			if stats.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, stats.Message)
			}
			if stats.TotalRepos != 1 || stats.PublicRepos != 1 || stats.TotalStars != 0 {
				t.Errorf("expected placeholder counts, got %+v", stats)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// StatsCache
// ---------------------------------------------------------------------------

type countingStatsService struct {
	calls   atomic.Int32
	release chan struct{}
	result  func(n int32) model.RepositoryStatistics
}

func (s *countingStatsService) Fetch(ctx context.Context) model.RepositoryStatistics {
	n := s.calls.Add(1)
	if s.release != nil {
		<-s.release
	}
	if s.result != nil {
		return s.result(n)
	}
	return model.RepositoryStatistics{TotalRepos: int(n)}
}

func TestStatsCache_FetchesOnce(t *testing.T) {
	svc := &countingStatsService{}
	cache := NewStatsCache(svc, 0)

	if cache.State() != CacheEmpty {
		t.Fatalf("expected empty, got %s", cache.State())
	}
	first := cache.Get(context.Background())
	second := cache.Get(context.Background())

	if svc.calls.Load() != 1 {
		t.Errorf("expected 1 fetch, got %d", svc.calls.Load())
	}
	if first.TotalRepos != second.TotalRepos {
		t.Error("expected cached value on second Get")
	}
	if cache.State() != CacheReady {
		t.Errorf("expected ready, got %s", cache.State())
	}
}

func TestStatsCache_ConcurrentGetSharesFetch(t *testing.T) {
	svc := &countingStatsService{release: make(chan struct{})}
	cache := NewStatsCache(svc, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Get(context.Background())
		}()
	}

	deadline := time.Now().Add(2 * time.Second)
	for svc.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if cache.State() != CacheLoading {
		t.Errorf("expected loading while the fetch is in flight, got %s", cache.State())
	}
	close(svc.release)
	wg.Wait()

	if svc.calls.Load() != 1 {
		t.Errorf("expected concurrent Gets to share 1 fetch, got %d", svc.calls.Load())
	}
}

func TestStatsCache_RetryRefetches(t *testing.T) {
	svc := &countingStatsService{result: func(n int32) model.RepositoryStatistics {
		if n == 1 {
			return RateLimitedStatistics(nil, fixedNow)
		}
		return model.RepositoryStatistics{TotalRepos: 7}
	}}
	cache := NewStatsCache(svc, 0)

	if got := cache.Get(context.Background()); !got.RateLimited {
		t.Fatalf("expected degraded first result, got %+v", got)
	}
	if cache.State() != CacheDegraded {
		t.Errorf("expected degraded, got %s", cache.State())
	}
	// Degraded results are cached like any other.
	cache.Get(context.Background())
	if svc.calls.Load() != 1 {
		t.Errorf("expected no automatic retry, got %d fetches", svc.calls.Load())
	}

	got := cache.Retry(context.Background())
	if got.TotalRepos != 7 || svc.calls.Load() != 2 {
		t.Errorf("expected retry to refetch, got %+v after %d calls", got, svc.calls.Load())
	}
	if cache.State() != CacheReady {
		t.Errorf("expected ready, got %s", cache.State())
	}
}

func TestStatsCache_FailedState(t *testing.T) {
	svc := &countingStatsService{result: func(n int32) model.RepositoryStatistics {
		return FailedStatistics(errors.New("boom"), fixedNow)
	}}
	cache := NewStatsCache(svc, 0)
	cache.Get(context.Background())
	if cache.State() != CacheFailed {
		t.Errorf("expected failed, got %s", cache.State())
	}
}

func TestStatsCache_TTL(t *testing.T) {
	svc := &countingStatsService{}
	cache := NewStatsCache(svc, time.Minute)
	now := fixedNow
	cache.now = func() time.Time { return now }

	cache.Get(context.Background())
	now = now.Add(30 * time.Second)
	cache.Get(context.Background())
	if svc.calls.Load() != 1 {
		t.Fatalf("expected cached value inside the TTL, got %d fetches", svc.calls.Load())
	}

	now = now.Add(time.Minute)
	if cache.State() != CacheEmpty {
		t.Errorf("expected expired entry to report empty, got %s", cache.State())
	}
	cache.Get(context.Background())
	if svc.calls.Load() != 2 {
		t.Errorf("expected refetch after expiry, got %d fetches", svc.calls.Load())
	}
}

func TestStatsCache_Snapshot(t *testing.T) {
	svc := &countingStatsService{}
	cache := NewStatsCache(svc, 0)

	state, v := cache.Snapshot()
	if state != CacheEmpty || v.TotalRepos != 0 {
		t.Errorf("expected empty snapshot, got %s %+v", state, v)
	}
	cache.Get(context.Background())
	state, v = cache.Snapshot()
	if state != CacheReady || v.TotalRepos != 1 {
		t.Errorf("expected ready snapshot, got %s %+v", state, v)
	}
	if svc.calls.Load() != 1 {
		t.Errorf("snapshot must not fetch, got %d fetches", svc.calls.Load())
	}
}
