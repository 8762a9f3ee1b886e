package usecase

import (
	"context"

	"github.com/naka-gawa/pr-insights/internal/domain"
)

// Repositories lists the most recently updated repositories of the user with their open pull
// request counts. A failed count probe yields 0 for that repository; only the listing itself can fail.
func (a *Aggregator) Repositories(ctx context.Context) ([]domain.RepositorySummary, error) {
	a.logger.Debug("Usecase: Listing repositories...")

	repos, err := a.fetcher.ListRepositories(ctx, a.limits.SummaryRepos)
	if err != nil {
		return nil, err
	}

	counts := settleAll(ctx, a.limits.MaxConcurrency, repos, func(ctx context.Context, repo domain.Repository) settled[int] {
		n, err := a.fetcher.CountOpenPullRequests(ctx, repo.Owner, repo.Name)
		return settle(n, err, 0)
	})

	summaries := make([]domain.RepositorySummary, len(repos))
	for i, repo := range repos {
		if counts[i].Degraded {
			a.logger.WithError(counts[i].Err).WithField("repository", repo.FullName).Warn("Open pull request count unavailable")
		}
		summaries[i] = domain.NewRepositorySummary(repo, counts[i].Value)
	}

	a.logger.Debugf("Usecase: Summarized %d repositories.", len(summaries))
	return summaries, nil
}
