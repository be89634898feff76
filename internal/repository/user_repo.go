package repository

import (
	"context"

	"github.com/heishia/bluroutine/internal/model"
)

type UserRepository struct {
	store *MemoryStore
}

func NewUserRepository(store *MemoryStore) *UserRepository {
	return &UserRepository{store: store}
}

// CreateUser inserts a new user, assigning id, provider and created_at.
// Email uniqueness is checked under the same lock as the insert.
func (r *UserRepository) CreateUser(ctx context.Context, u *model.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrEmailExists
		}
	}

	u.ID = s.nextID("user")
	u.Provider = model.ProviderEmail
	u.CreatedAt = s.now()

	stored := *u
	s.users = append(s.users, &stored)
	s.observe()
	return nil
}

// FindByEmail returns user by email (exact, case-sensitive match).
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}
