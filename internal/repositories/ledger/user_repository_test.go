package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/mknzz/budget_tracker_app/internal/apperrors"
	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	"github.com/mknzz/budget_tracker_app/internal/repositories/kvstore"
	"github.com/mknzz/budget_tracker_app/internal/repositories/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser(id, email string) domain.User {
	return domain.User{
		UserID:       id,
		Name:         "Ada",
		Email:        email,
		PasswordHash: "$2a$10$notarealhash",
		CreatedAt:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestUserRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := ledger.NewUserRepository(kvstore.NewMemoryStore())

	require.NoError(t, repo.SaveUser(ctx, sampleUser("uid-1", "ada@example.com")))

	byEmail, err := repo.FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", byEmail.UserID)

	byID, err := repo.FindUserByID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := ledger.NewUserRepository(kvstore.NewMemoryStore())

	_, err := repo.FindUserByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.FindUserByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_DuplicateEmailRejected(t *testing.T) {
	ctx := context.Background()
	repo := ledger.NewUserRepository(kvstore.NewMemoryStore())

	require.NoError(t, repo.SaveUser(ctx, sampleUser("uid-1", "ada@example.com")))

	err := repo.SaveUser(ctx, sampleUser("uid-2", "ada@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	// The original record is untouched.
	user, err := repo.FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.UserID)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	repo := ledger.NewUserRepository(kvstore.NewMemoryStore())

	require.NoError(t, repo.SaveUser(ctx, sampleUser("uid-1", "ada@example.com")))
	require.NoError(t, repo.UpdatePassword(ctx, "uid-1", "$2a$10$replacement"))

	user, err := repo.FindUserByID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$replacement", user.PasswordHash)

	err = repo.UpdatePassword(ctx, "no-such-id", "$2a$10$whatever")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_SurvivesFileReload(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/budget-data.json"

	store, err := kvstore.NewFileStore(path)
	require.NoError(t, err)
	repo := ledger.NewUserRepository(store)
	require.NoError(t, repo.SaveUser(ctx, sampleUser("uid-1", "ada@example.com")))

	reopened, err := kvstore.NewFileStore(path)
	require.NoError(t, err)
	user, err := ledger.NewUserRepository(reopened).FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.UserID)
}
