package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"createathon/internal/common"
)

// Tokens is the persisted session: the local-storage analogue of the web
// client. The access token is a JWT the client decodes (without verifying)
// for the user id and expiry; the refresh token is opaque.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (t Tokens) Empty() bool {
	return t.Access == "" && t.Refresh == ""
}

// Store keeps the session tokens in a local file. Components read the access
// token through AccessToken; only logout and the unauthorized path clear it.
type Store struct {
	mu     sync.RWMutex
	path   string
	tokens Tokens
}

// Open loads the session file if present. A missing file is an empty
// session, not an error.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, common.Errorf("read session file: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.tokens); err != nil {
			return nil, common.Errorf("parse session file: %w", err)
		}
	}
	return s, nil
}

func (s *Store) Tokens() Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}

// AccessToken is the token provider handed to the API client.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.Access
}

func (s *Store) Save(t Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = t
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return common.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return common.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return common.Errorf("write session file: %w", err)
	}
	return nil
}

// SetAccess replaces only the access token, as the refresh endpoint does.
func (s *Store) SetAccess(access string) error {
	t := s.Tokens()
	t.Access = access
	return s.Save(t)
}

// Clear wipes the in-memory tokens and removes the session file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = Tokens{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return common.Errorf("remove session file: %w", err)
	}
	return nil
}
