package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"createathon/internal/common"
	"createathon/internal/domain/model"
	"createathon/internal/judgemock"
)

func seedHistory(env *testEnv, userID string, challengeIDs ...string) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, chID := range challengeIDs {
		env.store.AddSubmissionRecord(judgemock.SubmissionRecord{
			UserID:      userID,
			ChallengeID: chID,
			Language:    "python",
			Code:        "pass",
			Status:      "accepted",
			SubmittedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
}

func TestDashboardJoinsTitlesAndToleratesMisses(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "alice")
	env.store.SetUserStats(userID, 2, 4, 1, 120)

	// "99" and "98" have no challenge behind them: their rows degrade.
	seedHistory(env, userID, "1", "99", "2", "98")

	svc := NewDashboardService(env.client, env.session, nil, zap.NewNop())
	board, err := svc.Load(context.Background(), userID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := board.Profile.CompletionPercent(); got != 50 {
		t.Errorf("completion = %d%%, want 50%%", got)
	}
	if len(board.History) != 4 {
		t.Fatalf("got %d records, want all 4", len(board.History))
	}

	wantTitles := []string{
		"Two Sum",
		model.PlaceholderTitle("99"),
		"Reverse Linked List",
		model.PlaceholderTitle("98"),
	}
	for i, want := range wantTitles {
		if got := board.History[i].ChallengeTitle; got != want {
			t.Errorf("record %d title = %q, want %q", i, got, want)
		}
	}
	for i, rec := range board.History {
		if rec.Status != model.StatusAccepted {
			t.Errorf("record %d status = %q, want Accepted", i, rec.Status)
		}
	}
}

func TestDashboardKeepsServerOrder(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "bob")
	seedHistory(env, userID, "3", "1", "2")

	svc := NewDashboardService(env.client, env.session, nil, zap.NewNop())
	board, err := svc.Load(context.Background(), userID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantIDs := []string{"3", "1", "2"}
	for i, want := range wantIDs {
		if got := board.History[i].ChallengeID; got != want {
			t.Errorf("record %d challenge id = %q, want %q", i, got, want)
		}
	}
}

func TestDashboardEmptyHistoryIsNotAnError(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "carol")

	svc := NewDashboardService(env.client, env.session, nil, zap.NewNop())
	board, err := svc.Load(context.Background(), userID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(board.History) != 0 {
		t.Errorf("got %d records, want none", len(board.History))
	}
}

func TestDashboardUnauthorizedClearsSession(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "dave")
	env.expireSession(t, userID, "")

	svc := NewDashboardService(env.client, env.session, nil, zap.NewNop())
	_, err := svc.Load(context.Background(), userID)
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if !env.session.Tokens().Empty() {
		t.Error("session was not cleared on unauthorized")
	}
}

func TestLeaderboardRanksAllUsers(t *testing.T) {
	env := newTestEnv(t)
	aliceID := env.register(t, "alice")
	env.store.SetUserStats(aliceID, 0, 0, 0, 50)
	bobID := env.register(t, "bob")
	env.store.SetUserStats(bobID, 0, 0, 0, 90)
	carolID := env.register(t, "carol")
	env.store.SetUserStats(carolID, 0, 0, 0, 90)

	svc := NewDashboardService(env.client, env.session, nil, zap.NewNop())
	entries, err := svc.Leaderboard(context.Background(), aliceID)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	// bob and carol tie at 90; bob registered first and stays ahead.
	if entries[0].Username != "bob" || entries[1].Username != "carol" || entries[2].Username != "alice" {
		t.Errorf("order = %s, %s, %s", entries[0].Username, entries[1].Username, entries[2].Username)
	}
	if !entries[2].IsViewer {
		t.Error("viewer entry not flagged")
	}
}

func TestLeaderboardUnauthorizedIsSurfaced(t *testing.T) {
	env := newTestEnv(t)

	svc := NewDashboardService(env.client, env.session, nil, zap.NewNop())
	_, err := svc.Leaderboard(context.Background(), "")
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized (not sample data)", err)
	}
	if !env.session.Tokens().Empty() {
		// Nothing was ever stored; the point is Leaderboard must not clear
		// sessions, only the dashboard load path does.
		t.Error("unexpected session state")
	}
}
