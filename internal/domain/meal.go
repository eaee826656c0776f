package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxMealNameLength        = 255
	MaxMealDescriptionLength = 2000
)

// Meal is a single eating event recorded by its owner.
type Meal struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	OccurredAt  time.Time
	OnDiet      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Seq is assigned on insert and never changes. Lists are ordered by it.
	Seq int64
}

// Metrics summarises a user's meals.
type Metrics struct {
	Total      int
	OnDiet     int
	OffDiet    int
	BestStreak int
}
