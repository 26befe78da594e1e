package model

import "sort"

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	IsViewer bool   `json:"is_viewer"`
}

// RankUsers orders users by points descending and assigns dense 1-based
// ranks. The sort is stable, so users with equal points keep their server
// order. The entry matching viewerID is flagged for highlighting.
func RankUsers(users []UserProfile, viewerID string) []LeaderboardEntry {
	sorted := make([]UserProfile, len(users))
	copy(sorted, users)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EarnedPoints > sorted[j].EarnedPoints
	})

	entries := make([]LeaderboardEntry, 0, len(sorted))
	for i, u := range sorted {
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			UserID:   u.ID,
			Username: u.Username,
			Points:   u.EarnedPoints,
			IsViewer: viewerID != "" && u.ID == viewerID,
		})
	}
	return entries
}
