package meal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dailydiet-backend/internal/domain"
	"github.com/heartmarshall/dailydiet-backend/pkg/ctxutil"
)

// CreateMeal records a new meal for the current user.
func (s *Service) CreateMeal(ctx context.Context, input MealInput) (*domain.Meal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	meal, err := s.meals.Create(ctx, &domain.Meal{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		OccurredAt:  *input.OccurredAt,
		OnDiet:      *input.OnDiet,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create meal: %w", err)
	}

	s.log.InfoContext(ctx, "meal created",
		slog.String("user_id", userID.String()),
		slog.String("meal_id", meal.ID.String()),
		slog.Bool("on_diet", meal.OnDiet),
	)

	return meal, nil
}
