package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/naka-gawa/pr-insights/internal/domain"
	"github.com/naka-gawa/pr-insights/internal/gateway"
)

// PullRequestFilter narrows the aggregation to one repository. It applies only when both
// Owner and Repo are set.
type PullRequestFilter struct {
	Owner string
	Repo  string
}

func (f PullRequestFilter) single() bool {
	return f.Owner != "" && f.Repo != ""
}

// PullRequests collects the recent pull requests of the target repositories, marks the ones that
// received an AI/bot review, and returns them sorted by last update, newest first.
// Pull requests updated at the same instant keep the order in which their repositories were listed.
func (a *Aggregator) PullRequests(ctx context.Context, filter PullRequestFilter) ([]domain.PullRequestView, error) {
	a.logger.Debug("Usecase: Starting pull request aggregation...")

	targets, err := a.targetRepositories(ctx, filter)
	if err != nil {
		return nil, err
	}

	perRepo := settleAll(ctx, a.limits.MaxConcurrency, targets, func(ctx context.Context, repo domain.Repository) settled[[]domain.PullRequestView] {
		views, err := a.repositoryPullRequests(ctx, repo)
		return settle(views, err, nil)
	})

	views := make([]domain.PullRequestView, 0)
	for i, r := range perRepo {
		if r.Degraded {
			a.logger.WithError(r.Err).WithField("repository", targets[i].FullName).Warn("Pull requests unavailable, skipping repository")
			continue
		}
		views = append(views, r.Value...)
	}
	sortByUpdatedDesc(views)

	a.logger.Debugf("Usecase: Aggregated %d pull requests from %d repositories.", len(views), len(targets))
	return views, nil
}

// targetRepositories resolves which repositories to inspect. A filtered repository that cannot be
// resolved yields no targets; only a rejected credential is an error.
func (a *Aggregator) targetRepositories(ctx context.Context, filter PullRequestFilter) ([]domain.Repository, error) {
	if !filter.single() {
		return a.fetcher.ListRepositories(ctx, a.limits.PullRequestRepos)
	}

	repo, err := a.fetcher.GetRepository(ctx, filter.Owner, filter.Repo)
	if err != nil {
		if errors.Is(err, domain.ErrAuthenticationInvalid) {
			return nil, err
		}
		a.logger.WithError(err).WithFields(logrus.Fields{
			"owner":      filter.Owner,
			"repository": filter.Repo,
		}).Warn("Repository not resolvable, returning no pull requests")
		return nil, nil
	}
	return []domain.Repository{repo}, nil
}

func (a *Aggregator) repositoryPullRequests(ctx context.Context, repo domain.Repository) ([]domain.PullRequestView, error) {
	prs, err := a.fetcher.ListPullRequests(ctx, repo.Owner, repo.Name, gateway.PullRequestQuery{
		State:     "all",
		Sort:      "updated",
		Direction: "desc",
		PerPage:   a.limits.PullRequestsPerRepo,
	})
	if err != nil {
		return nil, err
	}

	reviewed := settleAll(ctx, a.limits.MaxConcurrency, prs, func(ctx context.Context, pr domain.PullRequest) settled[bool] {
		comments, err := a.fetcher.ListIssueComments(ctx, repo.Owner, repo.Name, pr.Number, a.limits.CommentsPerPR)
		return settle(domain.HasAIReview(comments), err, false)
	})

	views := make([]domain.PullRequestView, len(prs))
	for i, pr := range prs {
		if reviewed[i].Degraded {
			a.logger.WithError(reviewed[i].Err).WithFields(logrus.Fields{
				"repository": repo.FullName,
				"number":     pr.Number,
			}).Warn("Comments unavailable, treating pull request as not AI reviewed")
		}
		views[i] = domain.NewPullRequestView(repo, pr, reviewed[i].Value)
	}
	return views, nil
}

// sortByUpdatedDesc orders newest first. Ties keep their relative order.
func sortByUpdatedDesc(views []domain.PullRequestView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].UpdatedAt.After(views[j].UpdatedAt)
	})
}
