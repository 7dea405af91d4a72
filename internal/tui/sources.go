package tui

import (
	"context"
	"time"

	"github.com/nexoradevlabs/site/internal/model"
	"github.com/nexoradevlabs/site/internal/service"
	"github.com/nexoradevlabs/site/pkg/relay"
)

// RelayStats reads repository statistics through the site's API, so the
// terminal shares the server's cache instead of spending its own GitHub quota.
type RelayStats struct {
	Client *relay.HTTPClient
	now    func() time.Time
}

func (r RelayStats) Get(ctx context.Context) model.RepositoryStatistics {
	return r.fetch(ctx, false)
}

func (r RelayStats) Retry(ctx context.Context) model.RepositoryStatistics {
	return r.fetch(ctx, true)
}

func (r RelayStats) fetch(ctx context.Context, retry bool) model.RepositoryStatistics {
	v, err := r.Client.Stats(ctx, retry)
	if err != nil {
		now := time.Now
		if r.now != nil {
			now = r.now
		}
		return service.FailedStatistics(err, now())
	}
	return v
}
