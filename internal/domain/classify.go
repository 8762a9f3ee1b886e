package domain

import "strings"

// The AI/bot classification is a substring heuristic on comment authors and bodies.
// It is not a reliable classifier and should not be treated as one.

const botLoginMarker = "bot"

var (
	// listingMarkers flag a pull request as AI reviewed in the pull request listing.
	listingMarkers = []string{"ai-powered review"}
	// detailMarkers flag individual comments in the review detail view.
	detailMarkers = []string{"ai-powered review", "static analysis"}
)

// HasAIReview reports whether any of the comments looks like automated review output.
// A pull request without comments is never AI reviewed.
func HasAIReview(comments []Comment) bool {
	for _, c := range comments {
		if isAutomated(c, listingMarkers) {
			return true
		}
	}
	return false
}

// IsAIComment reports whether a single comment is classified as AI/bot authored.
func IsAIComment(c Comment) bool {
	return isAutomated(c, detailMarkers)
}

// FilterAIComments returns the AI/bot comments in their original order. The result is never nil.
func FilterAIComments(comments []Comment) []Comment {
	filtered := make([]Comment, 0, len(comments))
	for _, c := range comments {
		if IsAIComment(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func isAutomated(c Comment, markers []string) bool {
	if strings.Contains(strings.ToLower(c.User.Login), botLoginMarker) {
		return true
	}
	body := strings.ToLower(c.Body)
	for _, m := range markers {
		if strings.Contains(body, m) {
			return true
		}
	}
	return false
}
