// Package usecase contains the business logic of the application.
package usecase

import (
	"github.com/sirupsen/logrus"

	"github.com/naka-gawa/pr-insights/internal/gateway"
)

// Limits are the page sizes of every upstream call and the per-level concurrency cap.
type Limits struct {
	SummaryRepos        int
	PullRequestRepos    int
	PullRequestsPerRepo int
	CommentsPerPR       int
	ReviewsPerPR        int
	StatsRepos          int
	StatsPRsPerRepo     int
	// MaxConcurrency bounds the number of in-flight calls of one fan-out. 0 means unbounded.
	MaxConcurrency int
}

// DefaultLimits returns the limits the dashboard is served with.
func DefaultLimits(maxConcurrency int) Limits {
	return Limits{
		SummaryRepos:        20,
		PullRequestRepos:    10,
		PullRequestsPerRepo: 20,
		CommentsPerPR:       100,
		ReviewsPerPR:        100,
		StatsRepos:          10,
		StatsPRsPerRepo:     50,
		MaxConcurrency:      maxConcurrency,
	}
}

// Aggregator is the use case behind every dashboard view.
// It fans out calls for one authenticated user and merges the results.
// An Aggregator is built per request and holds no state between calls.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *logrus.Logger
	limits  Limits
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *logrus.Logger, limits Limits) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
		limits:  limits,
	}
}
