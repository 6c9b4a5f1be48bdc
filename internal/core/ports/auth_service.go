package ports

import (
	"context"

	"github.com/kt1928/re-platform2.0/internal/core/domain"
)

// RegisterInput carries the fields needed to create a user account.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FullName   string
	Role       domain.Role
	IsActive   bool
	IsVerified bool
}

// TokenResult is what a successful login returns to the client.
type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// AuthService is the orchestration core for authentication and authorization.
type AuthService interface {
	// Register creates a user. It is policy-agnostic: the admin-only gate on
	// registration is enforced by the HTTP layer, not here.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)

	// Authenticate checks username/password and returns the user on success,
	// updating last_login as a side effect. It returns (nil, nil) uniformly
	// for unknown username, wrong password, and inactive account so callers
	// cannot distinguish which factor failed. A non-nil error means the
	// store itself failed.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// Login authenticates and mints a bearer token, or fails with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*TokenResult, error)

	// ResolveUser decodes a bearer token back to its user. Invalid or
	// expired tokens, and tokens for vanished users, fail with
	// domain.ErrUnauthenticated; disabled accounts with domain.ErrInactiveUser.
	ResolveUser(ctx context.Context, tokenStr string) (*domain.User, error)
}
