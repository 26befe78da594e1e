package service

import (
	"context"

	"go.uber.org/zap"

	"createathon/internal/api"
	"createathon/internal/common"
	"createathon/internal/domain/model"
	"createathon/internal/platform/cache"
)

// ProblemService loads challenge metadata for the workspace and the entry
// listing. Failures are surfaced to the caller; there is no automatic retry.
type ProblemService struct {
	client *api.Client
	cache  *cache.ChallengeCache
	logger *zap.Logger
}

func NewProblemService(client *api.Client, challengeCache *cache.ChallengeCache, logger *zap.Logger) *ProblemService {
	return &ProblemService{client: client, cache: challengeCache, logger: logger}
}

// Load fetches one challenge by id. A challenge without a title is treated
// as missing rather than returned as an empty shape.
func (s *ProblemService) Load(ctx context.Context, id string) (*model.Challenge, error) {
	if ch, ok := s.cache.Get(ctx, id); ok {
		return ch, nil
	}

	ch, err := s.client.GetChallenge(ctx, id)
	if err != nil {
		s.logger.Warn("challenge load failed", zap.String("challenge_id", id), zap.Error(err))
		return nil, err
	}
	if ch.Title == "" {
		return nil, common.Errorf("challenge %s has no title: %w", id, common.ErrNotFound)
	}

	s.cache.Put(ctx, ch)
	return ch, nil
}

// List fetches the entry-page challenge listing in server order.
func (s *ProblemService) List(ctx context.Context) ([]model.Challenge, error) {
	challenges, err := s.client.ListChallenges(ctx)
	if err != nil {
		s.logger.Warn("challenge listing failed", zap.Error(err))
		return nil, err
	}
	return challenges, nil
}
