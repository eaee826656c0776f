package meal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dailydiet-backend/internal/domain"
)

type mealRepo interface {
	Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error)
	GetByID(ctx context.Context, userID, mealID uuid.UUID) (*domain.Meal, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error)
	Update(ctx context.Context, m *domain.Meal) (*domain.Meal, error)
	Delete(ctx context.Context, userID, mealID uuid.UUID) error
}

// Service provides owner-scoped meal operations.
type Service struct {
	meals mealRepo
	log   *slog.Logger
}

// NewService creates a new Meal service.
func NewService(
	log *slog.Logger,
	meals mealRepo,
) *Service {
	return &Service{
		meals: meals,
		log:   log.With("service", "meal"),
	}
}
