// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/pr-insights/internal/config"
	"github.com/naka-gawa/pr-insights/internal/domain"
)

// PullRequestQuery selects a single page of pull requests.
type PullRequestQuery struct {
	State     string
	Sort      string
	Direction string
	PerPage   int
}

// Fetcher defines the read-only GitHub operations of a single authenticated user.
// Every call may fail independently of the others.
type Fetcher interface {
	ListRepositories(ctx context.Context, perPage int) ([]domain.Repository, error)
	GetRepository(ctx context.Context, owner, name string) (domain.Repository, error)
	ListPullRequests(ctx context.Context, owner, repo string, query PullRequestQuery) ([]domain.PullRequest, error)
	CountOpenPullRequests(ctx context.Context, owner, repo string) (int, error)
	ListIssueComments(ctx context.Context, owner, repo string, number, perPage int) ([]domain.Comment, error)
	ListReviews(ctx context.Context, owner, repo string, number, perPage int) ([]domain.Review, error)
	GetAuthenticatedUser(ctx context.Context) (domain.User, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *logrus.Logger
}

// openPullRequestsQuery counts open pull requests without listing them.
type openPullRequestsQuery struct {
	Repository struct {
		PullRequests struct {
			TotalCount int
		} `graphql:"pullRequests(states: OPEN)"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// NewGitHubGateway creates a gateway that authenticates every call with token.
func NewGitHubGateway(token string, cfg config.GitHub, logger *logrus.Logger) (*GitHubGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(cfg.RateLimitSleepLimit, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}

	restClient := github.NewClient(httpClient)
	if cfg.APIURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(cfg.APIURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("failed to parse GitHub API URL: %w", err)
		}
		restClient.BaseURL = baseURL
	}

	graphqlClient := githubv4.NewClient(httpClient)
	if cfg.GraphQLURL != "" {
		graphqlClient = githubv4.NewEnterpriseClient(cfg.GraphQLURL, httpClient)
	}

	return &GitHubGateway{
		restClient:    restClient,
		graphqlClient: graphqlClient,
		logger:        logger,
	}, nil
}

// ListRepositories lists the repositories of the authenticated user, most recently updated first.
func (g *GitHubGateway) ListRepositories(ctx context.Context, perPage int) ([]domain.Repository, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	repos, _, err := g.restClient.Repositories.ListByAuthenticatedUser(ctx, opts)
	if err != nil {
		return nil, upstreamError("list repositories", err)
	}
	g.logger.Debugf("Fetched %d repositories.", len(repos))

	result := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		result = append(result, toRepository(r))
	}
	return result, nil
}

func (g *GitHubGateway) GetRepository(ctx context.Context, owner, name string) (domain.Repository, error) {
	repo, _, err := g.restClient.Repositories.Get(ctx, owner, name)
	if err != nil {
		return domain.Repository{}, upstreamError(fmt.Sprintf("get repository %s/%s", owner, name), err)
	}
	return toRepository(repo), nil
}

func (g *GitHubGateway) ListPullRequests(ctx context.Context, owner, repo string, query PullRequestQuery) ([]domain.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       query.State,
		Sort:        query.Sort,
		Direction:   query.Direction,
		ListOptions: github.ListOptions{PerPage: query.PerPage},
	}
	prs, _, err := g.restClient.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return nil, upstreamError(fmt.Sprintf("list pull requests of %s/%s", owner, repo), err)
	}
	g.logger.Debugf("  Fetched %d pull requests of %s/%s.", len(prs), owner, repo)

	result := make([]domain.PullRequest, 0, len(prs))
	for _, pr := range prs {
		result = append(result, toPullRequest(pr))
	}
	return result, nil
}

// CountOpenPullRequests asks the GraphQL API for the exact number of open pull requests.
func (g *GitHubGateway) CountOpenPullRequests(ctx context.Context, owner, repo string) (int, error) {
	variables := map[string]interface{}{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(repo),
	}
	var q openPullRequestsQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return 0, upstreamError(fmt.Sprintf("count open pull requests of %s/%s", owner, repo), err)
	}
	return q.Repository.PullRequests.TotalCount, nil
}

func (g *GitHubGateway) ListIssueComments(ctx context.Context, owner, repo string, number, perPage int) ([]domain.Comment, error) {
	opts := &github.IssueListCommentsOptions{ListOptions: github.ListOptions{PerPage: perPage}}
	comments, _, err := g.restClient.Issues.ListComments(ctx, owner, repo, number, opts)
	if err != nil {
		return nil, upstreamError(fmt.Sprintf("list comments of %s/%s#%d", owner, repo, number), err)
	}

	result := make([]domain.Comment, 0, len(comments))
	for _, c := range comments {
		result = append(result, toComment(c))
	}
	return result, nil
}

func (g *GitHubGateway) ListReviews(ctx context.Context, owner, repo string, number, perPage int) ([]domain.Review, error) {
	reviews, _, err := g.restClient.PullRequests.ListReviews(ctx, owner, repo, number, &github.ListOptions{PerPage: perPage})
	if err != nil {
		return nil, upstreamError(fmt.Sprintf("list reviews of %s/%s#%d", owner, repo, number), err)
	}

	result := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, toReview(r))
	}
	return result, nil
}

// GetAuthenticatedUser fetches the profile the token belongs to.
// GitHub answers 401 for a revoked or malformed token.
func (g *GitHubGateway) GetAuthenticatedUser(ctx context.Context) (domain.User, error) {
	user, _, err := g.restClient.Users.Get(ctx, "")
	if err != nil {
		return domain.User{}, upstreamError("get authenticated user", err)
	}
	return toUser(user), nil
}
