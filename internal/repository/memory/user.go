// Package memory implements the store contracts on top of in-process
// maps with sequential integer ids. It is the reference engine: state
// is volatile and every operation is atomic under a per-store mutex.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mahmoud1053/EventHub/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type UserRepository struct {
	mu     sync.Mutex
	users  map[int64]domain.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int64]domain.User),
		nextID: 1,
	}
}

func (r *UserRepository) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, input.Email) {
			return nil, domain.ErrEmailTaken
		}
	}

	user := domain.User{
		ID:        r.nextID,
		Username:  input.Username,
		Password:  string(hash),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		IsAdmin:   input.IsAdmin,
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	r.users[user.ID] = user

	out := user
	return &out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	out := user
	return &out, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			out := u
			return &out, nil
		}
	}

	return nil, domain.ErrUserNotFound
}
