package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/dailydiet-backend/internal/domain"
)

// Login verifies credentials and issues a session token.
// Returns ErrUnauthorized if the email is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.verify(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// VerifyCredentials returns the user id for a matching email + password pair.
// Unknown email and wrong password both return ErrUnauthorized.
func (s *Service) VerifyCredentials(ctx context.Context, email, password string) (uuid.UUID, error) {
	user, err := s.verify(ctx, domain.NormalizeEmail(email), password)
	if err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

// verify rejects oversized values as ErrUnauthorized: no stored account can
// match them, and login reports a single failure kind for bad credentials.
func (s *Service) verify(ctx context.Context, email, password string) (*domain.User, error) {
	if len(email) > maxEmailLength || len(password) > maxPasswordLength {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password[:min(len(password), maxPasswordLength)]))
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.VerifyCredentials get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}
