package model

import "testing"

func TestRankUsersOrdersByPointsWithStableTies(t *testing.T) {
	users := []UserProfile{
		{ID: "1", Username: "fifty", EarnedPoints: 50},
		{ID: "2", Username: "ninetyA", EarnedPoints: 90},
		{ID: "3", Username: "ninetyB", EarnedPoints: 90},
		{ID: "4", Username: "ten", EarnedPoints: 10},
	}

	entries := RankUsers(users, "3")

	want := []struct {
		rank     int
		username string
		points   int
	}{
		{1, "ninetyA", 90},
		{2, "ninetyB", 90},
		{3, "fifty", 50},
		{4, "ten", 10},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, w := range want {
		e := entries[i]
		if e.Rank != w.rank || e.Username != w.username || e.Points != w.points {
			t.Errorf("entry %d = (%d, %s, %d), want (%d, %s, %d)",
				i, e.Rank, e.Username, e.Points, w.rank, w.username, w.points)
		}
	}
	if !entries[1].IsViewer {
		t.Error("viewer entry not flagged")
	}
	if entries[0].IsViewer {
		t.Error("non-viewer entry flagged")
	}
}

func TestRankUsersEmpty(t *testing.T) {
	if entries := RankUsers(nil, "1"); len(entries) != 0 {
		t.Fatalf("got %d entries for empty input", len(entries))
	}
}

func TestRankUsersDoesNotMutateInput(t *testing.T) {
	users := []UserProfile{
		{ID: "1", EarnedPoints: 10},
		{ID: "2", EarnedPoints: 20},
	}
	RankUsers(users, "")
	if users[0].ID != "1" || users[1].ID != "2" {
		t.Error("input slice was reordered")
	}
}
