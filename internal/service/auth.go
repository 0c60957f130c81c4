package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/mahmoud1053/EventHub/internal/domain"
	"github.com/mahmoud1053/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type TokenIssuer interface {
	Issue(userID int64, isAdmin bool) (string, error)
}

type AuthService struct {
	users  ports.UserRepo
	tokens TokenIssuer
	logger logger.Logger
}

func NewAuthService(users ports.UserRepo, tokens TokenIssuer, logger logger.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates a user and issues a session token. The returned
// user still carries the credential hash; callers strip it before
// external exposure.
func (s *AuthService) Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, string, error) {
	if input.Username == "" {
		return nil, "", fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, "", fmt.Errorf("%w: email is not a valid address", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", fmt.Errorf("check email: %w", err)
	}

	user, err := s.users.Create(ctx, input)
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	tok, err := s.tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user registered",
		logger.Any("user_id", user.ID),
		logger.String("email", user.Email),
	)

	return user, tok, nil
}

// Login verifies the credentials and issues a session token. An
// unknown email and a wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in",
		logger.Any("user_id", user.ID),
	)

	return user, tok, nil
}

func (s *AuthService) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
