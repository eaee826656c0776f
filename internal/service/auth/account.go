package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dailydiet-backend/internal/domain"
	"github.com/heartmarshall/dailydiet-backend/pkg/ctxutil"
)

// Me returns the authenticated user's profile.
// A valid token for a deleted account yields ErrUnauthorized.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}

	return user, nil
}

// DeleteAccount removes the authenticated user and all of their meals in
// one transaction. Tokens issued before deletion stay verifiable until they
// expire but no longer resolve to a user.
func (s *Service) DeleteAccount(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var removed int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.meals.DeleteAll(txCtx, userID)
		if err != nil {
			return fmt.Errorf("delete meals: %w", err)
		}
		removed = n

		if err := s.users.Delete(txCtx, userID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("auth.DeleteAccount: %w", domain.ErrUnauthorized)
		}
		return fmt.Errorf("auth.DeleteAccount: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted",
		slog.String("user_id", userID.String()),
		slog.Int("meals_removed", removed))

	return nil
}
