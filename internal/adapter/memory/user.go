package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/dailydiet-backend/internal/domain"
)

// UserRepo provides user persistence on top of Store.
type UserRepo struct {
	s *Store
}

// Create inserts a new user. A duplicate email returns domain.ErrAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.emails[u.Email]; ok {
		return nil, fmt.Errorf("user %s: %w", u.ID, domain.ErrAlreadyExists)
	}
	if _, ok := r.s.users[u.ID]; ok {
		return nil, fmt.Errorf("user %s: %w", u.ID, domain.ErrAlreadyExists)
	}

	r.s.users[u.ID] = *u
	r.s.emails[u.Email] = u.ID

	out := *u
	return &out, nil
}

// GetByID returns a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}

// GetByEmail returns a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[email]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	u := r.s.users[id]
	return &u, nil
}

// Delete removes a user and all of its meals.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	delete(r.s.users, id)
	delete(r.s.emails, u.Email)
	for mealID, m := range r.s.meals {
		if m.UserID == id {
			delete(r.s.meals, mealID)
		}
	}
	return nil
}
