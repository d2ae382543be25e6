package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"codecontest_client/internal/api"
	"codecontest_client/internal/common"
	"codecontest_client/internal/domain/model"
	"codecontest_client/internal/platform/session"
)

type fakeAuthAPI struct {
	loginFn  func(req api.LoginRequest) (model.Identity, error)
	signupFn func(req api.SignupRequest) (model.Identity, error)
	logoutFn func() error

	signupCalls int
}

func (f *fakeAuthAPI) Login(_ context.Context, req api.LoginRequest) (model.Identity, error) {
	if f.loginFn == nil {
		return model.Identity{}, errors.New("Login not implemented")
	}
	return f.loginFn(req)
}

func (f *fakeAuthAPI) Signup(_ context.Context, req api.SignupRequest) (model.Identity, error) {
	f.signupCalls++
	if f.signupFn == nil {
		return model.Identity{}, errors.New("Signup not implemented")
	}
	return f.signupFn(req)
}

func (f *fakeAuthAPI) Logout(_ context.Context) error {
	if f.logoutFn == nil {
		return nil
	}
	return f.logoutFn()
}

func newTestSessions(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestLoginPersistsSession(t *testing.T) {
	apiFake := &fakeAuthAPI{
		loginFn: func(req api.LoginRequest) (model.Identity, error) {
			if req.Email != "alice@example.com" {
				t.Fatalf("unexpected email %q", req.Email)
			}
			return model.Identity{ID: "u1", Username: "alice", Role: model.RoleStudent}, nil
		},
	}
	sessions := newTestSessions(t)
	svc := NewAuthService(apiFake, sessions)

	user, err := svc.Login(context.Background(), Credentials{Email: "alice@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user %+v", user)
	}
	if current, ok := sessions.Current(); !ok || current.ID != "u1" {
		t.Fatalf("session not persisted: %+v, %v", current, ok)
	}
}

func TestLoginRejectedLeavesNoSession(t *testing.T) {
	apiFake := &fakeAuthAPI{
		loginFn: func(api.LoginRequest) (model.Identity, error) {
			return model.Identity{}, &common.RemoteError{Status: 401, Message: "bad credentials"}
		},
	}
	sessions := newTestSessions(t)
	svc := NewAuthService(apiFake, sessions)

	_, err := svc.Login(context.Background(), Credentials{Email: "a@b.c", Password: "pw"})
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if _, ok := sessions.Current(); ok {
		t.Fatal("failed login must not persist a session")
	}
}

func TestSignupPasswordMismatchSkipsNetwork(t *testing.T) {
	apiFake := &fakeAuthAPI{}
	svc := NewAuthService(apiFake, newTestSessions(t))

	_, err := svc.Signup(context.Background(), Credentials{
		Username:        "bob",
		Email:           "bob@example.com",
		Password:        "pw1",
		ConfirmPassword: "pw2",
	})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if apiFake.signupCalls != 0 {
		t.Fatalf("signup issued %d network calls, want 0", apiFake.signupCalls)
	}
}

func TestSignupDefaultsToStudentRole(t *testing.T) {
	apiFake := &fakeAuthAPI{
		signupFn: func(req api.SignupRequest) (model.Identity, error) {
			if req.Role != model.RoleStudent {
				t.Fatalf("role = %q, want student", req.Role)
			}
			return model.Identity{ID: "u2", Username: req.Username, Role: req.Role}, nil
		},
	}
	svc := NewAuthService(apiFake, newTestSessions(t))
	if _, err := svc.Signup(context.Background(), Credentials{
		Username: "bob", Email: "bob@example.com", Password: "pw", ConfirmPassword: "pw",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}
}

func TestLogoutClearsSessionEvenWhenAPIFails(t *testing.T) {
	apiFake := &fakeAuthAPI{
		logoutFn: func() error { return errors.New("server unreachable") },
	}
	sessions := newTestSessions(t)
	if err := sessions.Save(model.Identity{ID: "u1", Username: "alice"}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	svc := NewAuthService(apiFake, sessions)

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := sessions.Current(); ok {
		t.Fatal("session must be cleared even when the API call fails")
	}
}
