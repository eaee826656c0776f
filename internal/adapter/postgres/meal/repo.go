// Package meal implements the Meal repository using PostgreSQL.
// Every statement is scoped by user_id, so a foreign meal cannot be read,
// changed or removed through this package.
package meal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/dailydiet-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dailydiet-backend/internal/domain"
)

const table = "meals"

var columns = []string{
	"id", "user_id", "name", "description", "occurred_at", "on_diet", "seq", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides meal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new meal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type mealRow struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	OccurredAt  time.Time `db:"occurred_at"`
	OnDiet      bool      `db:"on_diet"`
	Seq         int64     `db:"seq"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r mealRow) toDomain() *domain.Meal {
	return &domain.Meal{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		OccurredAt:  r.OccurredAt,
		OnDiet:      r.OnDiet,
		Seq:         r.Seq,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a meal owned by userID.
// Returns domain.ErrNotFound if the meal does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, mealID uuid.UUID) (*domain.Meal, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("id = ? AND user_id = ?", mealID, userID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get meal: %w", err)
	}

	var row mealRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, mapError(err, mealID)
	}

	return row.toDomain(), nil
}

// List returns all meals of userID in insertion order (seq ASC).
// Returns an empty slice when the user has no meals.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("user_id = ?", userID).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list meals: %w", err)
	}

	var rows []mealRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	meals := make([]*domain.Meal, len(rows))
	for i, row := range rows {
		meals[i] = row.toDomain()
	}
	return meals, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new meal and returns it with the assigned seq.
// An unknown owner maps to domain.ErrNotFound via the foreign key.
func (r *Repo) Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "name", "description", "occurred_at", "on_diet", "created_at", "updated_at").
		Values(m.ID, m.UserID, m.Name, m.Description, m.OccurredAt, m.OnDiet, m.CreatedAt, m.UpdatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert meal: %w", err)
	}

	var row mealRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, mapError(err, m.ID)
	}

	return row.toDomain(), nil
}

// Update replaces name, description, occurred_at and on_diet in a single
// statement. Returns domain.ErrNotFound if the meal does not exist or
// belongs to another user.
func (r *Repo) Update(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("name", m.Name).
		Set("description", m.Description).
		Set("occurred_at", m.OccurredAt).
		Set("on_diet", m.OnDiet).
		Set("updated_at", m.UpdatedAt).
		Where("id = ? AND user_id = ?", m.ID, m.UserID).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update meal: %w", err)
	}

	var row mealRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, mapError(err, m.ID)
	}

	return row.toDomain(), nil
}

// Delete removes a meal. Returns domain.ErrNotFound if the meal
// does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where("id = ? AND user_id = ?", mealID, userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete meal: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, mealID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meal %s: %w", mealID, domain.ErrNotFound)
	}

	return nil
}

// DeleteAll removes every meal of userID. Idempotent: calling it for a user
// without meals is not an error. Returns the number of deleted meals.
func (r *Repo) DeleteAll(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete meals: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete meals: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func mapError(err error, id uuid.UUID) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("meal %s: %w", id, domain.ErrNotFound)
	}
	return postgres.MapError(err, "meal", id)
}
