package repository

import (
	"context"
	"sync"

	"pdf-translator/internal/domain"
)

// MemoryUserRepository keeps accounts in process memory. Used when no
// database is configured.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]domain.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{byEmail: make(map[string]domain.User)}
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrUserAlreadyExists
	}
	r.byEmail[user.Email] = *user
	return nil
}
