package domain

import "time"

// User is a GitHub account as seen through the REST API.
type User struct {
	Login     string `json:"login"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url,omitempty"`

	PublicRepos int `json:"public_repos,omitempty"`
	Followers   int `json:"followers,omitempty"`
	Following   int `json:"following,omitempty"`
}

// Repository is the upstream repository record the gateway translates responses into.
type Repository struct {
	ID              int64
	Name            string
	Owner           string
	FullName        string
	Description     string
	Private         bool
	HTMLURL         string
	StargazersCount int
	ForksCount      int
	Language        string
	OpenIssuesCount int
	UpdatedAt       time.Time
}

// PullRequest is the upstream pull request record.
type PullRequest struct {
	ID        int64
	Number    int
	Title     string
	State     string
	HTMLURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
	// MergedAt is nil until the pull request is merged.
	MergedAt *time.Time
	Author   User
}

// Merged reports whether the pull request carries a merge timestamp.
func (p PullRequest) Merged() bool {
	return p.MergedAt != nil
}

// Comment is an issue comment on a pull request.
type Comment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	HTMLURL   string    `json:"html_url"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `json:"user"`
}

// Review is a formal pull request review.
type Review struct {
	ID          int64     `json:"id"`
	Body        string    `json:"body"`
	State       string    `json:"state"`
	HTMLURL     string    `json:"html_url"`
	SubmittedAt time.Time `json:"submitted_at"`
	User        User      `json:"user"`
}
