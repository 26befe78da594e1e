package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"

	"createathon/internal/common"
	"createathon/internal/judgemock"
	"createathon/internal/platform/cache"
)

func newTestCache(t *testing.T) *cache.ChallengeCache {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.Connect(context.Background(), mr.Addr(), "", 0, time.Minute)
	if err != nil {
		t.Fatalf("connect cache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestProblemLoad(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProblemService(env.client, nil, zap.NewNop())

	ch, err := svc.Load(context.Background(), "3")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ch.Title != "Longest Substring Without Repeating Characters" {
		t.Errorf("title = %q", ch.Title)
	}
	if ch.Slug != "longest-substring-without-repeating-characters" {
		t.Errorf("slug = %q", ch.Slug)
	}
	if ch.Difficulty != "Medium" {
		t.Errorf("difficulty = %q", ch.Difficulty)
	}
}

func TestProblemLoadUnknownID(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProblemService(env.client, nil, zap.NewNop())

	_, err := svc.Load(context.Background(), "404")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestProblemLoadEmptyTitleIsMissing(t *testing.T) {
	env := newTestEnv(t)
	env.store.AddChallenge(judgemock.ChallengeRecord{ID: "77", Difficulty: "Easy"})
	svc := NewProblemService(env.client, nil, zap.NewNop())

	_, err := svc.Load(context.Background(), "77")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestProblemLoadServesFromCache(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProblemService(env.client, newTestCache(t), zap.NewNop())

	first, err := svc.Load(context.Background(), "1")
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}

	// The cached copy must survive the upstream challenge disappearing.
	env.store.RemoveChallenge("1")

	second, err := svc.Load(context.Background(), "1")
	if err != nil {
		t.Fatalf("cached Load: %v", err)
	}
	if second.Title != first.Title || second.Slug != first.Slug {
		t.Errorf("cached challenge differs: %+v vs %+v", second, first)
	}
}

func TestProblemList(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProblemService(env.client, nil, zap.NewNop())

	challenges, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(challenges) != 4 {
		t.Fatalf("got %d challenges, want 4", len(challenges))
	}
	if challenges[0].Title != "Two Sum" || challenges[3].Title != "Merge K Sorted Lists" {
		t.Errorf("listing out of order: first=%q last=%q", challenges[0].Title, challenges[3].Title)
	}
}
