package meal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/dailydiet-backend/internal/domain"
	"github.com/heartmarshall/dailydiet-backend/internal/service/adherence"
	"github.com/heartmarshall/dailydiet-backend/pkg/ctxutil"
)

// ListMeals returns the current user's meals in insertion order.
func (s *Service) ListMeals(ctx context.Context) ([]*domain.Meal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	meals, err := s.meals.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	if meals == nil {
		meals = []*domain.Meal{}
	}

	return meals, nil
}

// GetMeal returns a single meal owned by the current user.
func (s *Service) GetMeal(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	meal, err := s.meals.GetByID(ctx, userID, mealID)
	if err != nil {
		return nil, fmt.Errorf("get meal: %w", err)
	}

	return meal, nil
}

// Metrics summarises the current user's meals.
func (s *Service) Metrics(ctx context.Context) (domain.Metrics, error) {
	meals, err := s.ListMeals(ctx)
	if err != nil {
		return domain.Metrics{}, err
	}
	return adherence.Compute(meals), nil
}
