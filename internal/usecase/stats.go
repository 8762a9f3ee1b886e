package usecase

import (
	"context"

	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/pr-insights/internal/domain"
	"github.com/naka-gawa/pr-insights/internal/gateway"
)

// Stats counts the pull requests of the most recently updated repositories.
// A repository whose pull requests cannot be fetched contributes nothing but is still counted
// in ActiveRepos.
func (a *Aggregator) Stats(ctx context.Context) (domain.StatsSummary, error) {
	a.logger.Debug("Usecase: Starting stats aggregation...")

	repos, err := a.fetcher.ListRepositories(ctx, a.limits.StatsRepos)
	if err != nil {
		return domain.StatsSummary{}, err
	}

	perRepo := settleAll(ctx, a.limits.MaxConcurrency, repos, func(ctx context.Context, repo domain.Repository) settled[[]domain.PullRequest] {
		prs, err := a.fetcher.ListPullRequests(ctx, repo.Owner, repo.Name, gateway.PullRequestQuery{
			State:   "all",
			PerPage: a.limits.StatsPRsPerRepo,
		})
		return settle(prs, err, nil)
	})

	summary := domain.StatsSummary{ActiveRepos: len(repos)}
	var hoursToMerge []float64
	for i, r := range perRepo {
		if r.Degraded {
			a.logger.WithError(r.Err).WithField("repository", repos[i].FullName).Warn("Pull requests unavailable, skipping repository")
			continue
		}
		for _, pr := range r.Value {
			summary.TotalPRs++
			switch {
			case pr.Merged():
				summary.MergedPRs++
				hoursToMerge = append(hoursToMerge, pr.MergedAt.Sub(pr.CreatedAt).Hours())
			case pr.State == domain.StateOpen:
				summary.OpenPRs++
			case pr.State == domain.StateClosed:
				summary.ClosedPRs++
			}
		}
	}
	summary.AcceptanceRate = acceptanceRate(summary.MergedPRs, summary.TotalPRs)
	summary.MedianHoursToMerge = medianHours(hoursToMerge)

	a.logger.Debug("Usecase: Stats aggregation complete.")
	return summary, nil
}

// acceptanceRate is the merged share in whole percent, rounded half up. 0 when there is nothing to rate.
func acceptanceRate(merged, total int) int {
	if total == 0 {
		return 0
	}
	rate, err := stats.Round(100*float64(merged)/float64(total), 0)
	if err != nil {
		return 0
	}
	return int(rate)
}

func medianHours(hours []float64) float64 {
	if len(hours) == 0 {
		return 0
	}
	median, err := stats.Median(hours)
	if err != nil {
		return 0
	}
	rounded, err := stats.Round(median, 1)
	if err != nil {
		return 0
	}
	return rounded
}
