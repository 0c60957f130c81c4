package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/mahmoud1053/EventHub/internal/domain"
	"github.com/mahmoud1053/EventHub/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type staticIssuer struct{}

func (staticIssuer) Issue(userID int64, isAdmin bool) (string, error) {
	return fmt.Sprintf("token-%d-%t", userID, isAdmin), nil
}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(memory.NewUserRepository(), staticIssuer{}, newTestLogger(t))
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newAuthService(t)

	user, tok, err := svc.Register(context.Background(), domain.CreateUserInput{
		Username:  "alice",
		Password:  "secret1",
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NotEqual(t, "secret1", user.Password)
	assert.Equal(t, "token-1-false", tok)
}

func TestAuthService_Register_FirstViolationOnly(t *testing.T) {
	svc := newAuthService(t)

	// username and email are both missing; only the first check fires
	_, _, err := svc.Register(context.Background(), domain.CreateUserInput{
		Password: "secret1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "username")
	assert.NotContains(t, err.Error(), "email")
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Password: "short",
		Email:    "alice@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, domain.CreateUserInput{
		Username: "alice",
		Password: "secret1",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, domain.CreateUserInput{
		Username: "other",
		Password: "secret2",
		Email:    "Alice@Example.com",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, domain.CreateUserInput{
		Username: "alice",
		Password: "secret1",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	user, tok, err := svc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, tok)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, domain.CreateUserInput{
		Username: "alice",
		Password: "secret1",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Me_UserGone(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Me(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
