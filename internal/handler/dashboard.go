package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/naka-gawa/pr-insights/internal/domain"
	"github.com/naka-gawa/pr-insights/internal/gateway"
	"github.com/naka-gawa/pr-insights/internal/usecase"
)

// DashboardHandler serves the repositories, pull requests, reviews and stats views.
// Each request gets its own gateway built from the caller's credential.
type DashboardHandler struct {
	*BaseHandler
	factory gateway.Factory
	limits  usecase.Limits
}

func NewDashboardHandler(factory gateway.Factory, limits usecase.Limits, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		factory:     factory,
		limits:      limits,
	}
}

func (h *DashboardHandler) fetcher(c echo.Context) (gateway.Fetcher, error) {
	token, _ := c.Get(tokenContextKey).(string)
	if token == "" {
		return nil, domain.ErrAuthenticationMissing
	}
	return h.factory.New(token)
}

func (h *DashboardHandler) aggregator(c echo.Context) (*usecase.Aggregator, error) {
	fetcher, err := h.fetcher(c)
	if err != nil {
		return nil, err
	}
	return usecase.NewAggregator(fetcher, h.logger, h.limits), nil
}

// GetUser returns the GitHub profile of the caller.
func (h *DashboardHandler) GetUser(c echo.Context) error {
	logEntry := h.logRequest(c, "get_user")

	fetcher, err := h.fetcher(c)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to create GitHub client")
	}
	user, err := fetcher.GetAuthenticatedUser(c.Request().Context())
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to get user")
	}

	logEntry.WithField("login", user.Login).Info("User retrieved")
	return c.JSON(http.StatusOK, user)
}

// GetRepositories returns the caller's recent repositories with open pull request counts.
func (h *DashboardHandler) GetRepositories(c echo.Context) error {
	logEntry := h.logRequest(c, "list_repositories")

	agg, err := h.aggregator(c)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to create GitHub client")
	}
	repos, err := agg.Repositories(c.Request().Context())
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to list repositories")
	}

	logEntry.WithField("repositories_count", len(repos)).Info("Repositories retrieved")
	return c.JSON(http.StatusOK, repos)
}

// GetPullRequests returns pull requests across recent repositories, or of the repository given by
// the owner and repo query parameters.
func (h *DashboardHandler) GetPullRequests(c echo.Context) error {
	filter := usecase.PullRequestFilter{
		Owner: c.QueryParam("owner"),
		Repo:  c.QueryParam("repo"),
	}
	logEntry := h.logRequest(c, "list_pull_requests").WithFields(logrus.Fields{
		"owner":      filter.Owner,
		"repository": filter.Repo,
	})

	agg, err := h.aggregator(c)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to create GitHub client")
	}
	prs, err := agg.PullRequests(c.Request().Context(), filter)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to list pull requests")
	}

	logEntry.WithField("pull_requests_count", len(prs)).Info("Pull requests retrieved")
	return c.JSON(http.StatusOK, prs)
}

// GetPullRequestReviews returns the reviews and classified comments of one pull request.
func (h *DashboardHandler) GetPullRequestReviews(c echo.Context) error {
	owner, repo := c.Param("owner"), c.Param("repo")
	logEntry := h.logRequest(c, "get_pull_request_reviews").WithFields(logrus.Fields{
		"owner":      owner,
		"repository": repo,
		"number":     c.Param("number"),
	})

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return h.fail(c, logEntry, domain.ErrInvalidPRNumber, "Invalid pull request number")
	}

	agg, err := h.aggregator(c)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to create GitHub client")
	}
	bundle, err := agg.Reviews(c.Request().Context(), owner, repo, number)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to get pull request reviews")
	}

	logEntry.WithFields(logrus.Fields{
		"reviews_count":    len(bundle.Reviews),
		"ai_reviews_count": len(bundle.AIReviews),
	}).Info("Pull request reviews retrieved")
	return c.JSON(http.StatusOK, bundle)
}

// GetStats returns the pull request counters of the caller's recent repositories.
func (h *DashboardHandler) GetStats(c echo.Context) error {
	logEntry := h.logRequest(c, "get_stats")

	agg, err := h.aggregator(c)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to create GitHub client")
	}
	summary, err := agg.Stats(c.Request().Context())
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to get stats")
	}

	logEntry.WithField("total_prs", summary.TotalPRs).Info("Stats retrieved")
	return c.JSON(http.StatusOK, summary)
}
