package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"createathon/internal/api"
	"createathon/internal/common"
	"createathon/internal/common/security"
	"createathon/internal/platform/session"
)

// AuthService is the workspace-entry gate. Unlike the submission path, it
// checks the access token locally first: an expired token triggers a refresh
// attempt before any protected view opens, and a failed refresh drops the
// session.
type AuthService struct {
	client  *api.Client
	session *session.Store
	logger  *zap.Logger
	now     func() time.Time
}

func NewAuthService(client *api.Client, sess *session.Store, logger *zap.Logger) *AuthService {
	return &AuthService{client: client, session: sess, logger: logger, now: time.Now}
}

func (s *AuthService) Login(ctx context.Context, username, password string) error {
	pair, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return s.session.Save(session.Tokens{Access: pair.Access, Refresh: pair.Refresh})
}

func (s *AuthService) Register(ctx context.Context, username, password string) error {
	pair, err := s.client.Register(ctx, username, password)
	if err != nil {
		return err
	}
	return s.session.Save(session.Tokens{Access: pair.Access, Refresh: pair.Refresh})
}

func (s *AuthService) Logout() error {
	return s.session.Clear()
}

// Authorized reports whether the stored session grants access to protected
// views, refreshing the access token when it has expired.
func (s *AuthService) Authorized(ctx context.Context) bool {
	tokens := s.session.Tokens()
	if tokens.Access == "" {
		return false
	}

	claims, err := security.DecodeUnverified(tokens.Access)
	if err != nil {
		s.logger.Warn("stored access token is malformed", zap.Error(err))
		return false
	}
	if !claims.Expired(s.now()) {
		return true
	}

	access, err := s.client.RefreshToken(ctx, tokens.Refresh)
	if err != nil {
		s.logger.Info("token refresh failed", zap.Error(err))
		return false
	}
	if err := s.session.SetAccess(access); err != nil {
		s.logger.Warn("failed to persist refreshed token", zap.Error(err))
		return false
	}
	return true
}

// CurrentUserID reads the user id claim out of the stored access token.
func (s *AuthService) CurrentUserID() (string, error) {
	tokens := s.session.Tokens()
	if tokens.Access == "" {
		return "", common.ErrUnauthorized
	}
	claims, err := security.DecodeUnverified(tokens.Access)
	if err != nil {
		return "", common.Errorf("%w: %v", common.ErrUnauthorized, err)
	}
	return claims.UserID, nil
}
