package api

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// AuthAPI maps the /auth endpoints and keeps the session in step with them
type AuthAPI struct {
	client *Client
	tokens TokenStore
}

// NewAuthAPI creates the auth facade. tokens receives the credential on login.
func NewAuthAPI(client *Client, tokens TokenStore) *AuthAPI {
	return &AuthAPI{client: client, tokens: tokens}
}

// Register creates an account
func (a *AuthAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	var user models.User
	if err := a.client.Post(ctx, "/api/v1/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a token and stores it in the session
func (a *AuthAPI) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	var resp models.LoginResponse
	if err := a.client.Post(ctx, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if err := a.tokens.Set(ctx, resp.Token.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return &resp, nil
}

// SignUp registers and then logs in with the same credentials
func (a *AuthAPI) SignUp(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	if _, err := a.Register(ctx, req); err != nil {
		return nil, err
	}
	return a.Login(ctx, models.LoginRequest{Email: req.Email, Password: req.Password})
}

// Me returns the user the current token belongs to
func (a *AuthAPI) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := a.client.Get(ctx, "/api/v1/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout forgets the stored credential. The backend keeps no session state.
func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.tokens.Set(ctx, "")
}

// Health reports whether the backend is reachable
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health calls GET /api/v1/health
func (a *AuthAPI) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := a.client.Get(ctx, "/api/v1/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
