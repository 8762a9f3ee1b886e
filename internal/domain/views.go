package domain

import "time"

// RepositorySummary is a repository of the signed-in user with its open pull request count attached.
type RepositorySummary struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Owner           string    `json:"owner"`
	FullName        string    `json:"full_name"`
	Description     string    `json:"description"`
	Private         bool      `json:"private"`
	HTMLURL         string    `json:"html_url"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	Language        string    `json:"language"`
	OpenIssuesCount int       `json:"open_issues_count"`
	OpenPRsCount    int       `json:"open_prs_count"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewRepositorySummary builds the summary for repo. openPRs is whatever the count probe produced,
// 0 when the probe failed.
func NewRepositorySummary(repo Repository, openPRs int) RepositorySummary {
	return RepositorySummary{
		ID:              repo.ID,
		Name:            repo.Name,
		Owner:           repo.Owner,
		FullName:        repo.FullName,
		Description:     repo.Description,
		Private:         repo.Private,
		HTMLURL:         repo.HTMLURL,
		StargazersCount: repo.StargazersCount,
		ForksCount:      repo.ForksCount,
		Language:        repo.Language,
		OpenIssuesCount: repo.OpenIssuesCount,
		OpenPRsCount:    openPRs,
		UpdatedAt:       repo.UpdatedAt,
	}
}

// Author is the trimmed-down author shown next to a pull request.
type Author struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// PullRequestView is the flattened pull request shape served to the dashboard.
type PullRequestView struct {
	ID         int64     `json:"id"`
	Number     int       `json:"number"`
	Title      string    `json:"title"`
	State      string    `json:"state"`
	Merged     bool      `json:"merged"`
	HTMLURL    string    `json:"html_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Repository string    `json:"repository"`
	Owner      string    `json:"owner"`
	User       Author    `json:"user"`
	AIReviewed bool      `json:"aiReviewed"`
}

// NewPullRequestView flattens pr of repo. A merged pull request is always reported as closed.
func NewPullRequestView(repo Repository, pr PullRequest, aiReviewed bool) PullRequestView {
	state := pr.State
	if pr.Merged() {
		state = StateClosed
	}
	login := pr.Author.Login
	if login == "" {
		login = "unknown"
	}
	return PullRequestView{
		ID:         pr.ID,
		Number:     pr.Number,
		Title:      pr.Title,
		State:      state,
		Merged:     pr.Merged(),
		HTMLURL:    pr.HTMLURL,
		CreatedAt:  pr.CreatedAt,
		UpdatedAt:  pr.UpdatedAt,
		Repository: repo.Name,
		Owner:      repo.Owner,
		User: Author{
			Login:     login,
			AvatarURL: pr.Author.AvatarURL,
		},
		AIReviewed: aiReviewed,
	}
}

// ReviewBundle is the review detail of a single pull request.
// AIReviews is the subset of AllComments classified as automated review output.
type ReviewBundle struct {
	Reviews     []Review  `json:"reviews"`
	AIReviews   []Comment `json:"aiReviews"`
	AllComments []Comment `json:"allComments"`
}

// Pull request states as reported by GitHub.
const (
	StateOpen   = "open"
	StateClosed = "closed"
)
