package memory

import (
	"context"
	"testing"

	"github.com/mahmoud1053/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserRepository_Create_SequentialIDsAndHashing(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	alice, err := repo.Create(ctx, domain.CreateUserInput{
		Username: "alice",
		Password: "secret1",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	bob, err := repo.Create(ctx, domain.CreateUserInput{
		Username: "bob",
		Password: "secret2",
		Email:    "bob@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), alice.ID)
	assert.Equal(t, int64(2), bob.ID)
	assert.False(t, alice.CreatedAt.IsZero())

	assert.NotEqual(t, "secret1", alice.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(alice.Password), []byte("secret1")))

	cost, err := bcrypt.Cost([]byte(alice.Password))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, 10)
}

func TestUserRepository_GetByEmail_CaseInsensitive(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CreateUserInput{
		Username: "alice",
		Password: "secret1",
		Email:    "A@B.com",
	})
	require.NoError(t, err)

	found, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.CreateUserInput{
		Username: "alice",
		Password: "secret1",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.CreateUserInput{
		Username: "other",
		Password: "secret2",
		Email:    "ALICE@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo := NewUserRepository()

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
