package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"createathon/internal/api"
	"createathon/internal/common"
	"createathon/internal/domain/model"
	"createathon/internal/platform/cache"
	"createathon/internal/platform/session"
)

// DashboardService reconciles a user's profile with their submission history
// and resolves each submission's challenge title. Title lookups are
// independent: one failing lookup degrades that single record to a
// placeholder and the rest of the batch is unaffected.
type DashboardService struct {
	client  *api.Client
	session *session.Store
	cache   *cache.ChallengeCache
	logger  *zap.Logger
}

func NewDashboardService(client *api.Client, sess *session.Store, challengeCache *cache.ChallengeCache, logger *zap.Logger) *DashboardService {
	return &DashboardService{client: client, session: sess, cache: challengeCache, logger: logger}
}

type Dashboard struct {
	Profile model.UserProfile
	History []model.SubmissionRecord
}

// Load fetches the profile and the submission list concurrently, then joins
// challenge titles onto the history. Records keep the server's order. A 401
// anywhere in the top-level fetches clears the persisted session; this is
// the only component that does so outside of an explicit logout.
func (s *DashboardService) Load(ctx context.Context, userID string) (*Dashboard, error) {
	var (
		profile *model.UserProfile
		raw     []api.RawSubmission
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.client.GetUser(gctx, userID)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		subs, err := s.client.ListUserSubmissions(gctx)
		if err != nil {
			return err
		}
		raw = subs
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			s.logger.Info("session expired, clearing local tokens")
			if clearErr := s.session.Clear(); clearErr != nil {
				s.logger.Warn("failed to clear session", zap.Error(clearErr))
			}
		}
		return nil, err
	}

	return &Dashboard{
		Profile: *profile,
		History: s.joinTitles(ctx, raw),
	}, nil
}

// joinTitles fans out one title lookup per submission and waits for all of
// them. Lookups never fail the join; a miss produces the placeholder title.
func (s *DashboardService) joinTitles(ctx context.Context, raw []api.RawSubmission) []model.SubmissionRecord {
	records := make([]model.SubmissionRecord, len(raw))

	var wg sync.WaitGroup
	for i, sub := range raw {
		wg.Add(1)
		go func(i int, sub api.RawSubmission) {
			defer wg.Done()
			records[i] = model.SubmissionRecord{
				ID:             sub.ID,
				ChallengeID:    sub.ChallengeID,
				ChallengeTitle: s.resolveTitle(ctx, sub.ChallengeID),
				Status:         model.NormalizeStatus(sub.Status),
				SubmittedAt:    sub.SubmittedAt,
			}
		}(i, sub)
	}
	wg.Wait()

	return records
}

func (s *DashboardService) resolveTitle(ctx context.Context, challengeID string) string {
	if ch, ok := s.cache.Get(ctx, challengeID); ok {
		return ch.Title
	}
	ch, err := s.client.GetChallenge(ctx, challengeID)
	if err != nil || ch.Title == "" {
		s.logger.Warn("title lookup degraded",
			zap.String("challenge_id", challengeID),
			zap.Error(err))
		return model.PlaceholderTitle(challengeID)
	}
	s.cache.Put(ctx, ch)
	return ch.Title
}

// Leaderboard ranks all users by points. The fetch requires auth; a 401 is
// reported as an error rather than masked with sample data, and it does not
// clear the session.
func (s *DashboardService) Leaderboard(ctx context.Context, viewerID string) ([]model.LeaderboardEntry, error) {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		s.logger.Warn("leaderboard fetch failed", zap.Error(err))
		return nil, err
	}
	return model.RankUsers(users, viewerID), nil
}
