package gateway

import (
	"errors"

	"github.com/google/go-github/v62/github"

	"github.com/naka-gawa/pr-insights/internal/domain"
)

// All translation from go-github types happens here.

func toRepository(r *github.Repository) domain.Repository {
	return domain.Repository{
		ID:              r.GetID(),
		Name:            r.GetName(),
		Owner:           r.GetOwner().GetLogin(),
		FullName:        r.GetFullName(),
		Description:     r.GetDescription(),
		Private:         r.GetPrivate(),
		HTMLURL:         r.GetHTMLURL(),
		StargazersCount: r.GetStargazersCount(),
		ForksCount:      r.GetForksCount(),
		Language:        r.GetLanguage(),
		OpenIssuesCount: r.GetOpenIssuesCount(),
		UpdatedAt:       r.GetUpdatedAt().Time,
	}
}

func toPullRequest(pr *github.PullRequest) domain.PullRequest {
	result := domain.PullRequest{
		ID:        pr.GetID(),
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		State:     pr.GetState(),
		HTMLURL:   pr.GetHTMLURL(),
		CreatedAt: pr.GetCreatedAt().Time,
		UpdatedAt: pr.GetUpdatedAt().Time,
		Author:    toUser(pr.GetUser()),
	}
	if pr.MergedAt != nil {
		mergedAt := pr.MergedAt.Time
		result.MergedAt = &mergedAt
	}
	return result
}

func toComment(c *github.IssueComment) domain.Comment {
	return domain.Comment{
		ID:        c.GetID(),
		Body:      c.GetBody(),
		HTMLURL:   c.GetHTMLURL(),
		CreatedAt: c.GetCreatedAt().Time,
		User:      toUser(c.GetUser()),
	}
}

func toReview(r *github.PullRequestReview) domain.Review {
	return domain.Review{
		ID:          r.GetID(),
		Body:        r.GetBody(),
		State:       r.GetState(),
		HTMLURL:     r.GetHTMLURL(),
		SubmittedAt: r.GetSubmittedAt().Time,
		User:        toUser(r.GetUser()),
	}
}

func toUser(u *github.User) domain.User {
	return domain.User{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		AvatarURL:   u.GetAvatarURL(),
		HTMLURL:     u.GetHTMLURL(),
		PublicRepos: u.GetPublicRepos(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
	}
}

// upstreamError records the HTTP status of a failed call where go-github exposes one.
// githubv4 reports non-200 responses as plain errors, so GraphQL failures always carry
// StatusCode 0 and never match ErrNotFound or ErrAuthenticationInvalid.
func upstreamError(op string, err error) error {
	ue := &domain.UpstreamError{Op: op, Err: err}

	var errResp *github.ErrorResponse
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	switch {
	case errors.As(err, &errResp) && errResp.Response != nil:
		ue.StatusCode = errResp.Response.StatusCode
	case errors.As(err, &rateErr) && rateErr.Response != nil:
		ue.StatusCode = rateErr.Response.StatusCode
	case errors.As(err, &abuseErr) && abuseErr.Response != nil:
		ue.StatusCode = abuseErr.Response.StatusCode
	}
	return ue
}
