package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"codecontest_client/internal/domain/model"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"user_id": "u1"}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSaveThenReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	if _, ok := store.Current(); ok {
		t.Fatal("fresh store must have no session")
	}

	id := model.Identity{
		ID:       "u1",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     model.RoleStudent,
		Token:    signedToken(t, time.Now().Add(time.Hour)),
	}
	if err := store.Save(id); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded := NewStore(path)
	got, ok := reloaded.Current()
	if !ok {
		t.Fatal("expected session to survive reload")
	}
	if got.Username != "alice" || got.Token != id.Token {
		t.Fatalf("reloaded identity mismatch: %+v", got)
	}
}

func TestClearRemovesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	if err := store.Save(model.Identity{ID: "u1", Username: "alice"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := store.Current(); ok {
		t.Fatal("session not cleared in memory")
	}
	if _, ok := NewStore(path).Current(); ok {
		t.Fatal("session record still on disk")
	}
}

func TestCorruptRecordMeansNoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := NewStore(path).Current(); ok {
		t.Fatal("corrupt record must load as no session")
	}
}

func TestExpiredTokenMeansNoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	if err := store.Save(model.Identity{ID: "u1", Token: signedToken(t, time.Now().Add(time.Hour))}); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded := &Store{path: path, now: func() time.Time { return time.Now().Add(2 * time.Hour) }}
	reloaded.current = reloaded.load()
	if _, ok := reloaded.Current(); ok {
		t.Fatal("expired token must load as no session")
	}
}

func TestTokenWithoutExpNeverExpires(t *testing.T) {
	if tokenExpired(signedToken(t, time.Time{}), time.Now().Add(1000*time.Hour)) {
		t.Fatal("token without exp claim must not expire locally")
	}
}

func TestGarbageTokenCountsAsExpired(t *testing.T) {
	if !tokenExpired("not-a-jwt", time.Now()) {
		t.Fatal("undecodable token must count as expired")
	}
}
