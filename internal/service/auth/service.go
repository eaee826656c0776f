package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/dailydiet-backend/internal/config"
	"github.com/heartmarshall/dailydiet-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// mealRepo is used only to clear a user's meals on account deletion.
type mealRepo interface {
	DeleteAll(ctx context.Context, userID uuid.UUID) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// tokenManager issues and verifies session tokens.
type tokenManager interface {
	Issue(userID uuid.UUID) (string, time.Time, error)
	Verify(token string) (uuid.UUID, error)
}

// Service implements credential and session operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	meals  mealRepo
	tx     txManager
	tokens tokenManager
	cfg    config.AuthConfig

	// dummyHash is compared against when the email is unknown so that both
	// login failure paths run one bcrypt comparison.
	dummyHash []byte
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	meals mealRepo,
	tx txManager,
	tokens tokenManager,
	cfg config.AuthConfig,
) (*Service, error) {
	dummy, err := newDummyHash(cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.NewService: %w", err)
	}

	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		meals:     meals,
		tx:        tx,
		tokens:    tokens,
		cfg:       cfg,
		dummyHash: dummy,
	}, nil
}

func newDummyHash(cost int) ([]byte, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate dummy password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword(secret, cost)
	if err != nil {
		return nil, fmt.Errorf("hash dummy password: %w", err)
	}
	return hash, nil
}
