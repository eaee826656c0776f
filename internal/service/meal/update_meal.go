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

// UpdateMeal replaces name, description, occurredAt and onDiet of a meal
// owned by the current user. A foreign or absent meal is ErrNotFound.
func (s *Service) UpdateMeal(ctx context.Context, mealID uuid.UUID, input MealInput) (*domain.Meal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	meal, err := s.meals.Update(ctx, &domain.Meal{
		ID:          mealID,
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		OccurredAt:  *input.OccurredAt,
		OnDiet:      *input.OnDiet,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("update meal: %w", err)
	}

	s.log.InfoContext(ctx, "meal updated",
		slog.String("user_id", userID.String()),
		slog.String("meal_id", mealID.String()),
	)

	return meal, nil
}
