package meal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dailydiet-backend/internal/domain"
	"github.com/heartmarshall/dailydiet-backend/pkg/ctxutil"
)

// DeleteMeal deletes a meal owned by the current user.
func (s *Service) DeleteMeal(ctx context.Context, mealID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.meals.Delete(ctx, userID, mealID); err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}

	s.log.InfoContext(ctx, "meal deleted",
		slog.String("user_id", userID.String()),
		slog.String("meal_id", mealID.String()),
	)

	return nil
}
