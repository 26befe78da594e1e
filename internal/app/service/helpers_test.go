package service

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"createathon/internal/api"
	"createathon/internal/common/security"
	"createathon/internal/judgemock"
	"createathon/internal/platform/session"
)

// testEnv runs the full client stack against an in-process mock judge.
type testEnv struct {
	store   *judgemock.Store
	server  *httptest.Server
	session *session.Store
	client  *api.Client
	auth    *AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	security.InitJWT([]byte("test-secret"))

	store := judgemock.NewStore()
	server := httptest.NewServer(judgemock.NewRouter(store, 30*time.Minute, 24*time.Hour))
	t.Cleanup(server.Close)

	sess, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("open session store: %v", err)
	}

	client := api.NewClient(server.URL, 5*time.Second, sess.AccessToken)
	return &testEnv{
		store:   store,
		server:  server,
		session: sess,
		client:  client,
		auth:    NewAuthService(client, sess, zap.NewNop()),
	}
}

// register creates an account through the real register endpoint and returns
// the new user's id; the session store now holds its tokens.
func (e *testEnv) register(t *testing.T, username string) string {
	t.Helper()
	if err := e.auth.Register(context.Background(), username, "password123"); err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	id, err := e.auth.CurrentUserID()
	if err != nil {
		t.Fatalf("current user id: %v", err)
	}
	return id
}

// expireSession replaces the stored access token with an already-expired one.
func (e *testEnv) expireSession(t *testing.T, userID, refresh string) {
	t.Helper()
	expired, err := security.GenerateToken(userID, security.TokenAccess, -time.Hour)
	if err != nil {
		t.Fatalf("mint expired token: %v", err)
	}
	if err := e.session.Save(session.Tokens{Access: expired, Refresh: refresh}); err != nil {
		t.Fatalf("save session: %v", err)
	}
}
