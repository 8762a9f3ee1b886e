// Package mocks provides testify mocks of the gateway interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/naka-gawa/pr-insights/internal/domain"
	"github.com/naka-gawa/pr-insights/internal/gateway"
)

var _ gateway.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of the gateway.Fetcher interface.
// It allows us to simulate the behavior of the GitHub gateway without making real API calls.
type Fetcher struct {
	mock.Mock
}

func (m *Fetcher) ListRepositories(ctx context.Context, perPage int) ([]domain.Repository, error) {
	args := m.Called(ctx, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repository), args.Error(1)
}

func (m *Fetcher) GetRepository(ctx context.Context, owner, name string) (domain.Repository, error) {
	args := m.Called(ctx, owner, name)
	return args.Get(0).(domain.Repository), args.Error(1)
}

func (m *Fetcher) ListPullRequests(ctx context.Context, owner, repo string, query gateway.PullRequestQuery) ([]domain.PullRequest, error) {
	args := m.Called(ctx, owner, repo, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PullRequest), args.Error(1)
}

func (m *Fetcher) CountOpenPullRequests(ctx context.Context, owner, repo string) (int, error) {
	args := m.Called(ctx, owner, repo)
	return args.Int(0), args.Error(1)
}

func (m *Fetcher) ListIssueComments(ctx context.Context, owner, repo string, number, perPage int) ([]domain.Comment, error) {
	args := m.Called(ctx, owner, repo, number, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *Fetcher) ListReviews(ctx context.Context, owner, repo string, number, perPage int) ([]domain.Review, error) {
	args := m.Called(ctx, owner, repo, number, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *Fetcher) GetAuthenticatedUser(ctx context.Context) (domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.User), args.Error(1)
}

// Factory is a mock implementation of the gateway.Factory interface.
type Factory struct {
	mock.Mock
}

var _ gateway.Factory = (*Factory)(nil)

func (m *Factory) New(token string) (gateway.Fetcher, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(gateway.Fetcher), args.Error(1)
}
