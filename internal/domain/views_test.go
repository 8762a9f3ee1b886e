package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPullRequestView(t *testing.T) {
	repo := Repository{Name: "repo-a", Owner: "octo"}
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	merged := created.Add(2 * time.Hour)

	t.Run("merged pull request is closed", func(t *testing.T) {
		pr := PullRequest{ID: 1, Number: 7, State: StateOpen, CreatedAt: created, MergedAt: &merged}
		view := NewPullRequestView(repo, pr, true)
		assert.True(t, view.Merged)
		assert.Equal(t, StateClosed, view.State)
		assert.True(t, view.AIReviewed)
		assert.Equal(t, "repo-a", view.Repository)
		assert.Equal(t, "octo", view.Owner)
	})

	t.Run("missing author falls back to unknown", func(t *testing.T) {
		view := NewPullRequestView(repo, PullRequest{State: StateOpen}, false)
		assert.Equal(t, "unknown", view.User.Login)
		assert.False(t, view.Merged)
		assert.Equal(t, StateOpen, view.State)
	})
}

func TestUpstreamError_Is(t *testing.T) {
	notFound := fmt.Errorf("resolve: %w", &UpstreamError{Op: "get repository", StatusCode: http.StatusNotFound, Err: errors.New("404")})
	unauthorized := &UpstreamError{Op: "list repositories", StatusCode: http.StatusUnauthorized, Err: errors.New("401")}

	assert.ErrorIs(t, notFound, ErrNotFound)
	assert.NotErrorIs(t, notFound, ErrAuthenticationInvalid)
	assert.ErrorIs(t, unauthorized, ErrAuthenticationInvalid)
	assert.Contains(t, unauthorized.Error(), "upstream status 401")
}
