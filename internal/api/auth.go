package api

import (
	"context"
	"net/http"

	"codecontest_client/internal/domain/model"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (model.Identity, error) {
	var id model.Identity
	err := c.do(ctx, http.MethodPost, "/api/user/login", req, &id)
	return id, err
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (model.Identity, error) {
	var id model.Identity
	err := c.do(ctx, http.MethodPost, "/api/user/signup", req, &id)
	return id, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/user/logout", nil, nil)
}
