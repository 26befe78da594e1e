package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"createathon/internal/domain/model"
)

// ChallengeCache is an optional redis-backed cache of challenge metadata.
// The dashboard join does one title lookup per submission; caching avoids
// refetching the same challenge on every dashboard visit. A nil cache is a
// valid always-miss cache, so callers never branch on whether caching is on.
type ChallengeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// Connect dials redis and returns the cache, or nil when addr is empty.
func Connect(ctx context.Context, addr, password string, db int, ttl time.Duration) (*ChallengeCache, error) {
	if addr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &ChallengeCache{rdb: rdb, ttl: ttl}, nil
}

func (c *ChallengeCache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

func challengeKey(id string) string {
	return "createathon:challenge:" + id
}

// Get returns the cached challenge, or ok=false on miss or any cache fault.
// Cache faults never fail the caller; the API is the source of truth.
func (c *ChallengeCache) Get(ctx context.Context, id string) (*model.Challenge, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, challengeKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var ch model.Challenge
	if err := json.Unmarshal(data, &ch); err != nil {
		return nil, false
	}
	return &ch, true
}

func (c *ChallengeCache) Put(ctx context.Context, ch *model.Challenge) {
	if c == nil || ch == nil {
		return
	}
	data, err := json.Marshal(ch)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, challengeKey(ch.ID), data, c.ttl).Err()
}
