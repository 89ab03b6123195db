package repositories

import (
	"context"

	"github.com/mknzz/budget_tracker_app/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by ID, or apperrors.ErrNotFound.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, or apperrors.ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when a
	// user with the same email already exists.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdatePassword replaces the stored password hash for userID.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
