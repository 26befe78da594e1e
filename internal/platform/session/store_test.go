package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMissingFileIsEmptySession(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !s.Tokens().Empty() {
		t.Error("missing file produced a non-empty session")
	}
	if s.AccessToken() != "" {
		t.Error("token provider returned a token for an empty session")
	}
}

func TestSaveAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Save(Tokens{Access: "acc-token", Refresh: "ref-token"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	tokens := reopened.Tokens()
	if tokens.Access != "acc-token" || tokens.Refresh != "ref-token" {
		t.Errorf("tokens = %+v", tokens)
	}
}

func TestSessionFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, _ := Open(path)
	if err := s.Save(Tokens{Access: "a"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("session file mode = %o, want 600", perm)
	}
}

func TestSetAccessKeepsRefresh(t *testing.T) {
	s, _ := Open(filepath.Join(t.TempDir(), "session.json"))
	if err := s.Save(Tokens{Access: "old", Refresh: "ref"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.SetAccess("new"); err != nil {
		t.Fatalf("SetAccess: %v", err)
	}

	tokens := s.Tokens()
	if tokens.Access != "new" || tokens.Refresh != "ref" {
		t.Errorf("tokens = %+v", tokens)
	}
}

func TestClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, _ := Open(path)
	if err := s.Save(Tokens{Access: "a", Refresh: "r"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if !s.Tokens().Empty() {
		t.Error("tokens survived Clear")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file survived Clear")
	}

	// Clearing an already-clean session is a no-op.
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}
