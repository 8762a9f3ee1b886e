package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/pr-insights/internal/config"
	"github.com/naka-gawa/pr-insights/internal/domain"
)

const testToken = "test-token"

// setupTestGateway creates a GitHubGateway that communicates with a mock HTTP server.
func setupTestGateway(t *testing.T, handler http.Handler) (*GitHubGateway, *httptest.Server) {
	server := httptest.NewServer(handler)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	gateway, err := NewGitHubGateway(testToken, config.GitHub{
		APIURL:              server.URL,
		GraphQLURL:          server.URL + "/graphql",
		RateLimitSleepLimit: time.Second,
	}, logger)
	require.NoError(t, err)

	return gateway, server
}

func TestGitHubGateway_ListRepositories(t *testing.T) {
	testCases := []struct {
		name           string
		handlerFunc    func(w http.ResponseWriter, r *http.Request)
		expected       []domain.Repository
		expectError    bool
		expectedStatus int
	}{
		{
			name: "happy path - maps repositories in upstream order",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/user/repos", r.URL.Path)
				assert.Equal(t, "updated", r.URL.Query().Get("sort"))
				assert.Equal(t, "20", r.URL.Query().Get("per_page"))
				assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
				fmt.Fprint(w, `[
					{"id": 2, "name": "repo-b", "full_name": "octo/repo-b", "owner": {"login": "octo"}, "private": true,
					 "html_url": "https://github.com/octo/repo-b", "stargazers_count": 3, "forks_count": 1,
					 "language": "Go", "open_issues_count": 4, "description": "second", "updated_at": "2025-01-02T00:00:00Z"},
					{"id": 1, "name": "repo-a", "full_name": "octo/repo-a", "owner": {"login": "octo"}, "updated_at": "2025-01-01T00:00:00Z"}
				]`)
			},
			expected: []domain.Repository{
				{
					ID: 2, Name: "repo-b", Owner: "octo", FullName: "octo/repo-b", Description: "second", Private: true,
					HTMLURL: "https://github.com/octo/repo-b", StargazersCount: 3, ForksCount: 1, Language: "Go",
					OpenIssuesCount: 4, UpdatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				},
				{ID: 1, Name: "repo-a", Owner: "octo", FullName: "octo/repo-a", UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
			},
		},
		{
			name: "error case - bad credentials",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"message": "Bad credentials"}`)
			},
			expectError:    true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "error case - GitHub API returns an error",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"message": "Internal Server Error"}`)
			},
			expectError:    true,
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gateway, server := setupTestGateway(t, http.HandlerFunc(tc.handlerFunc))
			defer server.Close()

			repos, err := gateway.ListRepositories(context.Background(), 20)
			if tc.expectError {
				require.Error(t, err)
				var upstreamErr *domain.UpstreamError
				require.ErrorAs(t, err, &upstreamErr)
				assert.Equal(t, tc.expectedStatus, upstreamErr.StatusCode)
				assert.Contains(t, err.Error(), "failed to list repositories")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, repos)
			}
		})
	}
}

func TestGitHubGateway_GetRepository_NotFound(t *testing.T) {
	gateway, server := setupTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octo/missing", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	}))
	defer server.Close()

	_, err := gateway.GetRepository(context.Background(), "octo", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGitHubGateway_ListPullRequests(t *testing.T) {
	gateway, server := setupTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octo/repo-a/pulls", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "all", q.Get("state"))
		assert.Equal(t, "updated", q.Get("sort"))
		assert.Equal(t, "desc", q.Get("direction"))
		assert.Equal(t, "20", q.Get("per_page"))
		fmt.Fprint(w, `[
			{"id": 11, "number": 3, "title": "Merged one", "state": "closed", "html_url": "https://github.com/octo/repo-a/pull/3",
			 "created_at": "2025-01-01T00:00:00Z", "updated_at": "2025-01-03T00:00:00Z", "merged_at": "2025-01-02T12:00:00Z",
			 "user": {"login": "alice", "avatar_url": "https://avatars/alice"}},
			{"id": 12, "number": 4, "title": "Open one", "state": "open", "created_at": "2025-01-04T00:00:00Z",
			 "updated_at": "2025-01-05T00:00:00Z", "merged_at": null}
		]`)
	}))
	defer server.Close()

	prs, err := gateway.ListPullRequests(context.Background(), "octo", "repo-a", PullRequestQuery{
		State: "all", Sort: "updated", Direction: "desc", PerPage: 20,
	})

	require.NoError(t, err)
	require.Len(t, prs, 2)
	mergedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, domain.PullRequest{
		ID: 11, Number: 3, Title: "Merged one", State: "closed", HTMLURL: "https://github.com/octo/repo-a/pull/3",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), UpdatedAt: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		MergedAt: &mergedAt, Author: domain.User{Login: "alice", AvatarURL: "https://avatars/alice"},
	}, prs[0])
	assert.False(t, prs[1].Merged())
	assert.Empty(t, prs[1].Author.Login)
}

func TestGitHubGateway_CountOpenPullRequests(t *testing.T) {
	testCases := []struct {
		name          string
		responseBody  string
		expectedCount int
		expectError   bool
	}{
		{
			name:          "happy path",
			responseBody:  `{"data":{"repository":{"pullRequests":{"totalCount":7}}}}`,
			expectedCount: 7,
		},
		{
			name:         "error case - repository not resolvable",
			responseBody: `{"errors":[{"message":"Could not resolve to a Repository"}]}`,
			expectError:  true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/graphql", r.URL.Path)
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Contains(t, string(body), "pullRequests(states: OPEN)")
				assert.Contains(t, string(body), `"owner":"octo"`)
				fmt.Fprint(w, tc.responseBody)
			}
			gateway, server := setupTestGateway(t, http.HandlerFunc(handler))
			defer server.Close()

			count, err := gateway.CountOpenPullRequests(context.Background(), "octo", "repo-a")
			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to count open pull requests")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedCount, count)
			}
		})
	}
}

func TestGitHubGateway_CommentsAndReviews(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/repo-a/issues/5/comments", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `[{"id": 1, "body": "AI-powered review", "user": {"login": "review-bot"}, "created_at": "2025-01-01T00:00:00Z"}]`)
	})
	mux.HandleFunc("/repos/octo/repo-a/pulls/5/reviews", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id": 9, "state": "APPROVED", "body": "ship it", "user": {"login": "carol"}, "submitted_at": "2025-01-02T00:00:00Z"}]`)
	})
	gateway, server := setupTestGateway(t, mux)
	defer server.Close()

	comments, err := gateway.ListIssueComments(context.Background(), "octo", "repo-a", 5, 100)
	require.NoError(t, err)
	assert.Equal(t, []domain.Comment{{
		ID: 1, Body: "AI-powered review", User: domain.User{Login: "review-bot"},
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}}, comments)

	reviews, err := gateway.ListReviews(context.Background(), "octo", "repo-a", 5, 100)
	require.NoError(t, err)
	assert.Equal(t, []domain.Review{{
		ID: 9, State: "APPROVED", Body: "ship it", User: domain.User{Login: "carol"},
		SubmittedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}}, reviews)

	_, err = gateway.ListReviews(context.Background(), "octo", "repo-a", 6, 100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGitHubGateway_GetAuthenticatedUser(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		gateway, server := setupTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/user", r.URL.Path)
			fmt.Fprint(w, `{"login": "octo", "name": "Octo Cat", "avatar_url": "https://avatars/octo", "public_repos": 12, "followers": 3}`)
		}))
		defer server.Close()

		user, err := gateway.GetAuthenticatedUser(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.User{Login: "octo", Name: "Octo Cat", AvatarURL: "https://avatars/octo", PublicRepos: 12, Followers: 3}, user)
	})

	t.Run("error case - token rejected", func(t *testing.T) {
		gateway, server := setupTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"message": "Bad credentials"}`)
		}))
		defer server.Close()

		_, err := gateway.GetAuthenticatedUser(context.Background())
		assert.ErrorIs(t, err, domain.ErrAuthenticationInvalid)
	})
}

func TestClientFactory_New(t *testing.T) {
	factory := NewClientFactory(config.GitHub{RateLimitSleepLimit: time.Minute}, logrus.New())

	fetcher, err := factory.New(testToken)

	require.NoError(t, err)
	assert.IsType(t, &GitHubGateway{}, fetcher)
}

func TestGitHubGateway_CountOpenPullRequests_GraphQLStatusNotMapped(t *testing.T) {
	gateway, server := setupTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message": "Bad credentials"}`)
	}))
	defer server.Close()

	_, err := gateway.CountOpenPullRequests(context.Background(), "octo", "repo-a")

	require.Error(t, err)
	var upstreamErr *domain.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Zero(t, upstreamErr.StatusCode)
	assert.NotErrorIs(t, err, domain.ErrAuthenticationInvalid)
}
