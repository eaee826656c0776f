package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/dailydiet-backend/internal/domain"
)

// MealRepo provides owner-scoped meal persistence on top of Store.
type MealRepo struct {
	s *Store
}

func cloneMeal(m domain.Meal) *domain.Meal {
	if m.Description != nil {
		d := *m.Description
		m.Description = &d
	}
	return &m
}

// Create inserts a meal and assigns the next seq.
// An unknown owner returns domain.ErrNotFound.
func (r *MealRepo) Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[m.UserID]; !ok {
		return nil, fmt.Errorf("meal %s: owner %s: %w", m.ID, m.UserID, domain.ErrNotFound)
	}
	if _, ok := r.s.meals[m.ID]; ok {
		return nil, fmt.Errorf("meal %s: %w", m.ID, domain.ErrAlreadyExists)
	}

	r.s.seq++
	stored := *cloneMeal(*m)
	stored.Seq = r.s.seq
	r.s.meals[m.ID] = stored

	return cloneMeal(stored), nil
}

// GetByID returns a meal owned by userID.
func (r *MealRepo) GetByID(ctx context.Context, userID, mealID uuid.UUID) (*domain.Meal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.meals[mealID]
	if !ok || rec.UserID != userID {
		return nil, fmt.Errorf("meal %s: %w", mealID, domain.ErrNotFound)
	}
	return cloneMeal(rec), nil
}

// List returns the owner's meals ordered by seq.
func (r *MealRepo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	meals := make([]*domain.Meal, 0)
	for _, rec := range r.s.meals {
		if rec.UserID == userID {
			meals = append(meals, cloneMeal(rec))
		}
	}
	slices.SortFunc(meals, func(a, b *domain.Meal) int {
		switch {
		case a.Seq < b.Seq:
			return -1
		case a.Seq > b.Seq:
			return 1
		}
		return 0
	})
	return meals, nil
}

// Update replaces the mutable fields of a meal owned by m.UserID.
// ID, owner, seq and creation time are kept.
func (r *MealRepo) Update(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.meals[m.ID]
	if !ok || rec.UserID != m.UserID {
		return nil, fmt.Errorf("meal %s: %w", m.ID, domain.ErrNotFound)
	}

	upd := *cloneMeal(*m)
	stored := rec
	stored.Name = upd.Name
	stored.Description = upd.Description
	stored.OccurredAt = upd.OccurredAt
	stored.OnDiet = upd.OnDiet
	stored.UpdatedAt = upd.UpdatedAt
	r.s.meals[m.ID] = stored

	return cloneMeal(stored), nil
}

// Delete removes a meal owned by userID.
func (r *MealRepo) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.meals[mealID]
	if !ok || rec.UserID != userID {
		return fmt.Errorf("meal %s: %w", mealID, domain.ErrNotFound)
	}
	delete(r.s.meals, mealID)
	return nil
}

// DeleteAll removes every meal of userID and returns how many were removed.
func (r *MealRepo) DeleteAll(ctx context.Context, userID uuid.UUID) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n := 0
	for id, rec := range r.s.meals {
		if rec.UserID == userID {
			delete(r.s.meals, id)
			n++
		}
	}
	return n, nil
}
