package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/nexoradevlabs/site/internal/model"
)

// CacheState is the lifecycle of a StatsCache entry.
type CacheState int

const (
	CacheEmpty CacheState = iota
	CacheLoading
	CacheReady
	CacheDegraded
	CacheFailed
)

func (s CacheState) String() string {
	switch s {
	case CacheEmpty:
		return "empty"
	case CacheLoading:
		return "loading"
	case CacheReady:
		return "ready"
	case CacheDegraded:
		return "degraded"
	case CacheFailed:
		return "failed"
	}
	return "unknown"
}

// StateFor classifies a statistics value.
func StateFor(stats model.RepositoryStatistics) CacheState {
	switch {
	case stats.Error:
		return CacheFailed
	case stats.RateLimited:
		return CacheDegraded
	default:
		return CacheReady
	}
}

// StatsCache holds one statistics value in memory. Concurrent Get calls share
// a single in-flight fetch; Retry discards the entry and fetches again.
type StatsCache struct {
	svc StatsService
	ttl time.Duration
	now func() time.Time

	group singleflight.Group

	mu       sync.Mutex
	state    CacheState
	value    model.RepositoryStatistics
	storedAt time.Time
	gen      uint64
}

// NewStatsCache wraps svc. A zero ttl keeps the value until Retry.
func NewStatsCache(svc StatsService, ttl time.Duration) *StatsCache {
	return &StatsCache{svc: svc, ttl: ttl, now: time.Now}
}

// Get returns the cached statistics, fetching them first if needed.
func (c *StatsCache) Get(ctx context.Context) model.RepositoryStatistics {
	c.mu.Lock()
	if c.hasValueLocked() {
		v := c.value
		c.mu.Unlock()
		return v
	}
	if c.state != CacheLoading {
		c.state = CacheLoading
	}
	gen := c.gen
	c.mu.Unlock()

	v, _, _ := c.group.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		c.mu.Lock()
		if gen == c.gen && c.hasValueLocked() {
			v := c.value
			c.mu.Unlock()
			return v, nil
		}
		c.mu.Unlock()
		// The fetch is shared, so one caller going away must not cancel it.
		stats := c.svc.Fetch(context.WithoutCancel(ctx))
		c.store(gen, stats)
		return stats, nil
	})
	return v.(model.RepositoryStatistics)
}

// Retry clears the entry and fetches again.
func (c *StatsCache) Retry(ctx context.Context) model.RepositoryStatistics {
	c.mu.Lock()
	c.gen++
	c.state = CacheEmpty
	c.value = model.RepositoryStatistics{}
	c.mu.Unlock()
	return c.Get(ctx)
}

// State reports the current entry state.
func (c *StatsCache) State() CacheState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != CacheLoading && c.state != CacheEmpty && c.expiredLocked() {
		return CacheEmpty
	}
	return c.state
}

// Snapshot returns the entry state and its value without fetching.
func (c *StatsCache) Snapshot() (CacheState, model.RepositoryStatistics) {
	state := c.State()
	c.mu.Lock()
	defer c.mu.Unlock()
	if state == CacheEmpty || state == CacheLoading {
		return state, model.RepositoryStatistics{}
	}
	return state, c.value
}

func (c *StatsCache) hasValueLocked() bool {
	switch c.state {
	case CacheReady, CacheDegraded, CacheFailed:
		return !c.expiredLocked()
	}
	return false
}

func (c *StatsCache) expiredLocked() bool {
	return c.ttl > 0 && c.now().Sub(c.storedAt) >= c.ttl
}

func (c *StatsCache) store(gen uint64, stats model.RepositoryStatistics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.value = stats
	c.state = StateFor(stats)
	c.storedAt = c.now()
}
