package meal

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/dailydiet-backend/internal/domain"
)

// MealInput holds the parameters for creating or replacing a meal.
// OccurredAt and OnDiet are pointers so that absence can be told apart
// from the zero value.
type MealInput struct {
	Name        string
	Description *string
	OccurredAt  *time.Time
	OnDiet      *bool
}

// normalize truncates OccurredAt to the microsecond precision every store
// keeps. Name and description are stored exactly as given.
func (i MealInput) normalize() MealInput {
	if i.OccurredAt != nil {
		t := i.OccurredAt.UTC().Truncate(time.Microsecond)
		i.OccurredAt = &t
	}
	return i
}

// Validate checks all fields and collects all errors. Call after normalize.
func (i MealInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case strings.TrimSpace(i.Name) == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case utf8.RuneCountInString(i.Name) > domain.MaxMealNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	if i.Description != nil && utf8.RuneCountInString(*i.Description) > domain.MaxMealDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if i.OccurredAt == nil || i.OccurredAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "occurredAt", Message: "required"})
	}

	if i.OnDiet == nil {
		errs = append(errs, domain.FieldError{Field: "onDiet", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
