package services

import (
	"context"

	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	"github.com/mknzz/budget_tracker_app/internal/dto"
)

// UserSvcFacade handles user accounts and credential checks. It is the
// pluggable seam in front of the user store; handlers only ever see
// `authenticate(email, password) -> user | denied`.
type UserSvcFacade interface {
	// Register creates a new user account. Returns apperrors.ErrDuplicate
	// when the email is already taken.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate checks credentials and returns the matching user, or
	// apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// VerifyEmailExists checks that an account exists for the given email,
	// returning apperrors.ErrNotFound otherwise. Used to gate the password
	// reset flow.
	VerifyEmailExists(ctx context.Context, email string) error

	// ResetPassword sets a new password for the account with the given
	// email. Returns apperrors.ErrNotFound for an unknown email.
	ResetPassword(ctx context.Context, email, newPassword string) error

	// GetUserByID retrieves a user by ID, or apperrors.ErrNotFound.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
