// Package domain contains the core data structures and domain logic for the application.
package domain

// StatsSummary holds the pull request counters for a window of recently updated repositories.
// OpenPRs, MergedPRs and ClosedPRs are disjoint and sum to TotalPRs.
type StatsSummary struct {
	TotalPRs           int     `json:"totalPRs"`
	OpenPRs            int     `json:"openPRs"`
	MergedPRs          int     `json:"mergedPRs"`
	ClosedPRs          int     `json:"closedPRs"`
	AcceptanceRate     int     `json:"acceptanceRate"`
	ActiveRepos        int     `json:"activeRepos"`
	MedianHoursToMerge float64 `json:"medianHoursToMerge"`
}
