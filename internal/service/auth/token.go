package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/dailydiet-backend/internal/domain"
)

// ValidateToken verifies a session token and returns its user id.
// Every failure is reported as ErrUnauthorized. No store lookup is made.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", "error", err)
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
