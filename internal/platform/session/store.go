package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"codecontest_client/internal/common"
	"codecontest_client/internal/domain/model"

	"github.com/golang-jwt/jwt/v5"
)

// Store holds the signed-in identity and mirrors it to a JSON file so the
// session survives restarts. A missing file, an unparseable record, or a
// record with an expired API token all load as "no session".
type Store struct {
	path string
	now  func() time.Time

	mu      sync.Mutex
	current model.Identity
}

func NewStore(path string) *Store {
	s := &Store{path: path, now: time.Now}
	s.current = s.load()
	return s
}

func (s *Store) load() model.Identity {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return model.Identity{}
	}
	var id model.Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return model.Identity{}
	}
	if id.Token != "" && tokenExpired(id.Token, s.now()) {
		return model.Identity{}
	}
	return id
}

// Current returns the signed-in identity, if any. It never blocks on I/O;
// the record is loaded once at construction and kept in memory.
func (s *Store) Current() (model.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, !s.current.IsZero()
}

// Token returns the API token of the current session, or "" when signed out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Token
}

// Save records a fresh identity in memory and on disk.
func (s *Store) Save(id model.Identity) error {
	if id.IsZero() {
		return common.Errorf("refusing to persist empty identity: %w", common.ErrValidation)
	}
	data, err := json.Marshal(id)
	if err != nil {
		return common.Errorf("encode identity: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return common.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return common.Errorf("write session file: %w", err)
	}
	s.mu.Lock()
	s.current = id
	s.mu.Unlock()
	return nil
}

// Clear wipes both the in-memory identity and the persisted record.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.current = model.Identity{}
	s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return common.Errorf("remove session file: %w", err)
	}
	return nil
}

// tokenExpired decodes the token claims without verifying the signature
// (the signing key lives on the server) and checks the exp claim. Tokens
// without an exp claim never expire locally; undecodable tokens count as
// expired.
func tokenExpired(raw string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
