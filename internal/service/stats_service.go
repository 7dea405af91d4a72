package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nexoradevlabs/site/internal/model"
	"github.com/nexoradevlabs/site/pkg/github"
)

// StatsService produces repository statistics for the GitHub organization.
type StatsService interface {
	// Fetch never fails: rate limiting and errors are folded into the
	// returned value so that callers always have something to render.
	Fetch(ctx context.Context) model.RepositoryStatistics
}

type statsServiceImpl struct {
	client github.Client
	org    string
	now    func() time.Time
	log    *slog.Logger
}

// NewStatsService creates a StatsService for the given organization.
func NewStatsService(client github.Client, org string) StatsService {
	return &statsServiceImpl{
		client: client,
		org:    org,
		now:    time.Now,
		log:    slog.Default().With(slog.String("component", "stats")),
	}
}

// Fetch reads the organization, then its repositories, and aggregates them.
func (s *statsServiceImpl) Fetch(ctx context.Context) model.RepositoryStatistics {
	org, err := s.client.GetOrganization(ctx, s.org)
	if err != nil {
		return s.fromError(err)
	}
	repos, err := s.client.ListOrgRepos(ctx, s.org)
	if err != nil {
		return s.fromError(err)
	}
	stats := AggregateStatistics(org, repos, s.now())
	s.log.Debug("github stats fetched",
		slog.Int("repos", stats.TotalRepos),
		slog.Int("stars", stats.TotalStars))
	return stats
}

func (s *statsServiceImpl) fromError(err error) model.RepositoryStatistics {
	var rl *github.RateLimitError
	if errors.As(err, &rl) {
		s.log.Warn("github API rate limited, showing fallback data")
		return RateLimitedStatistics(rl, s.now())
	}
	s.log.Error("failed to fetch github stats", slog.String("error", err.Error()))
	return FailedStatistics(err, s.now())
}

// AggregateStatistics sums counts across repos and classifies them by visibility.
func AggregateStatistics(org *github.Organization, repos []github.Repository, at time.Time) model.RepositoryStatistics {
	stats := model.RepositoryStatistics{
		TotalRepos:     len(repos),
		LastUpdated:    at,
		OrgName:        model.DefaultOrgName,
		OrgDescription: model.DefaultOrgDescription,
	}
	if org != nil {
		if org.Name != "" {
			stats.OrgName = org.Name
		}
		if org.Description != "" {
			stats.OrgDescription = org.Description
		}
	}
	for _, r := range repos {
		stats.TotalStars += r.StargazersCount
		stats.TotalForks += r.ForksCount
		stats.TotalWatchers += r.WatchersCount
		if r.Private {
			stats.PrivateRepos++
		} else {
			stats.PublicRepos++
		}
	}
	return stats
}

// RateLimitedStatistics is the degraded placeholder shown while GitHub is
// throttling requests.
func RateLimitedStatistics(rl *github.RateLimitError, at time.Time) model.RepositoryStatistics {
	stats := placeholderStatistics(at)
	stats.RateLimited = true
	if rl != nil {
		stats.RateLimitReset = rl.Reset
		stats.RetryAfter = rl.RetryAfter
	}
	return stats
}

// FailedStatistics is the placeholder shown after any other failure.
func FailedStatistics(err error, at time.Time) model.RepositoryStatistics {
	stats := placeholderStatistics(at)
	stats.Error = true
	stats.Message = "Failed to fetch stats"
	if err != nil {
		stats.Message = err.Error()
	}
	return stats
}

func placeholderStatistics(at time.Time) model.RepositoryStatistics {
	return model.RepositoryStatistics{
		TotalRepos:     1,
		PublicRepos:    1,
		LastUpdated:    at,
		OrgName:        model.DefaultOrgName,
		OrgDescription: model.DefaultOrgDescription,
	}
}
