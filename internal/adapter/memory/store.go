// Package memory implements the user and meal repositories in process memory.
// It mirrors the PostgreSQL adapter: owner-scoped meal access, unique emails,
// insertion-ordered lists and cascade of meals on user delete.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/dailydiet-backend/internal/domain"
)

// Store holds all data behind a single RWMutex.
type Store struct {
	mu     sync.RWMutex
	users  map[uuid.UUID]domain.User
	emails map[string]uuid.UUID
	meals  map[uuid.UUID]domain.Meal
	seq    int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:  make(map[uuid.UUID]domain.User),
		emails: make(map[string]uuid.UUID),
		meals:  make(map[uuid.UUID]domain.Meal),
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Meals returns the meal repository view of the store.
func (s *Store) Meals() *MealRepo { return &MealRepo{s: s} }

// Ping always succeeds; it lets the store back the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// TxManager serializes transactional blocks. There is no rollback: each
// repository call is applied immediately.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager creates a TxManager for the in-memory store.
func NewTxManager() *TxManager {
	return &TxManager{}
}

// RunInTx runs fn while holding the transaction lock.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
