package backend

import (
	"context"
	"net/http"

	"github.com/zealcatalyst/zeal-client/internal/domain"
)

type RegisterRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	FullName string      `json:"full_name"`
	Role     domain.Role `json:"role"`
	Phone    string      `json:"phone,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleAuthRequest exchanges a Google-issued credential for a
// backend-issued token.
type GoogleAuthRequest struct {
	Credential string      `json:"credential"`
	Role       domain.Role `json:"role,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*domain.Token, error) {
	var token domain.Token
	if err := c.send(ctx, http.MethodPost, "/auth/register", req, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*domain.Token, error) {
	var token domain.Token
	if err := c.send(ctx, http.MethodPost, "/auth/login", req, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *Client) GoogleAuth(ctx context.Context, req GoogleAuthRequest) (*domain.Token, error) {
	var token domain.Token
	if err := c.send(ctx, http.MethodPost, "/auth/google", req, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Me returns the user the current bearer token authenticates.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
