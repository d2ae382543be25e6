package service

import (
	"context"
	"log"

	"codecontest_client/internal/api"
	"codecontest_client/internal/common"
	"codecontest_client/internal/domain/model"
	"codecontest_client/internal/platform/session"
)

type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (model.Identity, error)
	Signup(ctx context.Context, req api.SignupRequest) (model.Identity, error)
	Logout(ctx context.Context) error
}

type AuthService struct {
	api      AuthAPI
	sessions *session.Store
}

func NewAuthService(api AuthAPI, sessions *session.Store) *AuthService {
	return &AuthService{api: api, sessions: sessions}
}

// Credentials is the auth form state. ConfirmPassword and Role only matter
// in signup mode.
type Credentials struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

func (s *AuthService) Login(ctx context.Context, creds Credentials) (model.Identity, error) {
	if creds.Email == "" || creds.Password == "" {
		return model.Identity{}, common.Errorf("email and password are required: %w", common.ErrValidation)
	}
	id, err := s.api.Login(ctx, api.LoginRequest{Email: creds.Email, Password: creds.Password})
	if err != nil {
		return model.Identity{}, common.Errorf("login: %w", err)
	}
	if err := s.sessions.Save(id); err != nil {
		return model.Identity{}, common.Errorf("persist session: %w", err)
	}
	return id, nil
}

// Signup registers a new account. A confirm-password mismatch fails before
// any network call is made.
func (s *AuthService) Signup(ctx context.Context, creds Credentials) (model.Identity, error) {
	if creds.Username == "" || creds.Email == "" || creds.Password == "" {
		return model.Identity{}, common.Errorf("username, email and password are required: %w", common.ErrValidation)
	}
	if creds.Password != creds.ConfirmPassword {
		return model.Identity{}, common.Errorf("passwords do not match: %w", common.ErrValidation)
	}
	role := creds.Role
	if role == "" {
		role = model.RoleStudent
	}
	id, err := s.api.Signup(ctx, api.SignupRequest{
		Username: creds.Username,
		Email:    creds.Email,
		Password: creds.Password,
		Role:     role,
	})
	if err != nil {
		return model.Identity{}, common.Errorf("signup: %w", err)
	}
	if err := s.sessions.Save(id); err != nil {
		return model.Identity{}, common.Errorf("persist session: %w", err)
	}
	return id, nil
}

// Logout tells the API to end the session and clears the local record. The
// local session is cleared even when the API call fails; a dead server must
// not pin the user to a stale login.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		log.Printf("logout request failed: %v", err)
	}
	return s.sessions.Clear()
}

// CurrentUser reads the session store; it never blocks.
func (s *AuthService) CurrentUser() (model.Identity, bool) {
	return s.sessions.Current()
}
