package ports

import (
	"context"
	"time"

	"github.com/kt1928/re-platform2.0/internal/core/domain"
)

// UserRepository defines the persistence contract for user records.
//
// Implementations are the final arbiter of the uniqueness invariant: Insert
// must fail with domain.ErrUserExists when another record already holds the
// same username or email, even if a concurrent ExistsWithUsernameOrEmail
// check passed moments earlier.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsWithUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string, ts time.Time) error
}
