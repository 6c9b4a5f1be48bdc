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
)

const (
	seedAdminUsername = "admin"
	seedAdminEmail    = "admin@re-platform.local"
	seedAdminFullName = "System Administrator"
)

// SeedAdmin creates the bootstrap admin account when none exists. Idempotent:
// an already-present admin user (including one inserted by a concurrent
// replica) leaves the store untouched.
func SeedAdmin(ctx context.Context, repo ports.UserRepository, logger zerolog.Logger, pw string) error {
	if _, err := repo.FindByUsername(ctx, seedAdminUsername); err == nil {
		logger.Debug().Msg("admin user already present, skipping seed")
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := password.Hash(pw)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &domain.User{
		ID:           uuid.NewString(),
		Username:     seedAdminUsername,
		Email:        seedAdminEmail,
		PasswordHash: hash,
		FullName:     seedAdminFullName,
		Role:         domain.RoleAdmin,
		IsActive:     true,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := repo.Insert(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			// another replica seeded first
			return nil
		}
		return err
	}

	logger.Info().Str("username", seedAdminUsername).Msg("seeded initial admin user")
	return nil
}
