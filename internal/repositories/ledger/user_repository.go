package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mknzz/budget_tracker_app/internal/apperrors"
	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/mknzz/budget_tracker_app/internal/core/ports/repositories"
)

// usersKey is the single global key holding the user collection.
const usersKey = "users"

// UserRepository persists the user collection in the key-value store.
type UserRepository struct {
	store portsrepo.KVStore
}

// NewUserRepository creates a UserRepository over the given store.
func NewUserRepository(store portsrepo.KVStore) *UserRepository {
	return &UserRepository{store: store}
}

// Ensure UserRepository implements the UserRepositoryFacade interface
var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) loadUsers(ctx context.Context) ([]domain.User, error) {
	raw, ok, err := r.store.Get(ctx, usersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	if !ok {
		return []domain.User{}, nil
	}

	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) saveUsers(ctx context.Context, users []domain.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := r.store.Set(ctx, usersKey, raw); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	users, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].UserID == userID {
			return &users[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	users, err := r.loadUsers(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Email == user.Email {
			return apperrors.ErrDuplicate
		}
	}
	return r.saveUsers(ctx, append(users, user))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	users, err := r.loadUsers(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].UserID == userID {
			users[i].PasswordHash = passwordHash
			return r.saveUsers(ctx, users)
		}
	}
	return apperrors.ErrNotFound
}
