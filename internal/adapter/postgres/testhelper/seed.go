package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dailydiet-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplace",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedMeal inserts a meal owned by userID and returns it with its seq.
func SeedMeal(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string, onDiet bool) domain.Meal {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	meal := domain.Meal{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		OccurredAt: now.Add(-time.Hour),
		OnDiet:     onDiet,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO meals (id, user_id, name, occurred_at, on_diet, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING seq`,
		meal.ID, meal.UserID, meal.Name, meal.OccurredAt, meal.OnDiet, meal.CreatedAt, meal.UpdatedAt,
	).Scan(&meal.Seq)
	if err != nil {
		t.Fatalf("testhelper: SeedMeal insert: %v", err)
	}

	return meal
}
