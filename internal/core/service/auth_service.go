package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kt1928/re-platform2.0/internal/core/domain"
	"github.com/kt1928/re-platform2.0/internal/core/ports"
	"github.com/kt1928/re-platform2.0/internal/pkg/password"
	"github.com/kt1928/re-platform2.0/internal/pkg/token"
)

// AuthService implements registration, login, and token resolution on top of
// the user repository and the token codec. It holds no mutable state of its
// own; every request is an independent orchestration over those two.
type AuthService struct {
	repo   ports.UserRepository
	codec  *token.Codec
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role, err := domain.ParseRole(string(input.Role))
	if err != nil {
		return nil, err
	}

	// Pre-check for a friendly Conflict; the unique indexes on the store
	// remain the final arbiter under concurrency.
	exists, err := s.repo.ExistsWithUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Role:         role,
		IsActive:     input.IsActive,
		IsVerified:   input.IsVerified,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("username", created.Username).
		Str("role", string(created.Role)).
		Msg("user registered")
	return created, nil
}

func (s *AuthService) Authenticate(ctx context.Context, username, pw string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same outcome as a wrong password: the caller must not be able
			// to tell whether the username exists.
			return nil, nil
		}
		return nil, err
	}

	if !password.Verify(pw, user.PasswordHash) {
		return nil, nil
	}

	if !user.IsActive {
		return nil, nil
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, pw string) (*ports.TokenResult, error) {
	user, err := s.Authenticate(ctx, username, pw)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(user.Username, user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return &ports.TokenResult{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int(s.codec.TTL().Seconds()),
	}, nil
}

func (s *AuthService) ResolveUser(ctx context.Context, tokenStr string) (*domain.User, error) {
	claims, err := s.codec.Decode(tokenStr)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	return user, nil
}
