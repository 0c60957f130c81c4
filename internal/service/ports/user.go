package ports

import (
	"context"

	"github.com/mahmoud1053/EventHub/internal/domain"
)

// UserRepo is the identity and credential store. Create hashes the
// plaintext password before persisting and returns the full record,
// hash included; callers strip it before external exposure. GetByEmail
// matches case-insensitively.
type UserRepo interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
