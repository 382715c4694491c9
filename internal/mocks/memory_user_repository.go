package mocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/patrykJ113/edicom-api/internal/auth/domain"
	autherror "github.com/patrykJ113/edicom-api/internal/errors"
)

// MemoryUserRepository is an in-memory domain.UserRepository for tests that
// exercise the real services end to end.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

var _ domain.UserRepository = (*MemoryUserRepository)(nil)

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: map[string]*domain.User{}}
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) GetByIDAndRefreshToken(_ context.Context, id, refreshToken string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.RefreshToken != refreshToken {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *MemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return autherror.ErrEmailAlreadyInUse
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *MemoryUserRepository) UpdateRefreshToken(_ context.Context, userID, refreshToken string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return errors.New("user not found")
	}
	u.RefreshToken = refreshToken
	u.UpdatedAt = time.Now()
	return nil
}

// Len reports how many users are stored.
func (r *MemoryUserRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
