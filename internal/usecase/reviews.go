package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/pr-insights/internal/domain"
)

// Reviews fetches the formal reviews and the issue comments of one pull request concurrently and
// classifies the AI/bot comments. Unlike the listings, a failure of either fetch fails the call.
func (a *Aggregator) Reviews(ctx context.Context, owner, repo string, number int) (domain.ReviewBundle, error) {
	if owner == "" || repo == "" {
		return domain.ReviewBundle{}, domain.ErrInvalidRepository
	}
	if number <= 0 {
		return domain.ReviewBundle{}, domain.ErrInvalidPRNumber
	}

	var reviews []domain.Review
	var comments []domain.Comment

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		reviews, err = a.fetcher.ListReviews(egCtx, owner, repo, number, a.limits.ReviewsPerPR)
		return err
	})
	eg.Go(func() error {
		var err error
		comments, err = a.fetcher.ListIssueComments(egCtx, owner, repo, number, a.limits.CommentsPerPR)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.ReviewBundle{}, err
	}

	// Encode as [] rather than null.
	if reviews == nil {
		reviews = []domain.Review{}
	}
	if comments == nil {
		comments = []domain.Comment{}
	}

	return domain.ReviewBundle{
		Reviews:     reviews,
		AIReviews:   domain.FilterAIComments(comments),
		AllComments: comments,
	}, nil
}
