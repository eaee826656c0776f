// Package adherence computes diet adherence figures over a user's meals.
package adherence

import "github.com/heartmarshall/dailydiet-backend/internal/domain"

// Compute returns the totals and the longest run of consecutive on-diet
// meals. Meals are taken in the order given; an off-diet meal resets the
// current run to zero. Nil entries are skipped.
func Compute(meals []*domain.Meal) domain.Metrics {
	var (
		m       domain.Metrics
		current int
	)

	for _, meal := range meals {
		if meal == nil {
			continue
		}
		m.Total++

		if !meal.OnDiet {
			m.OffDiet++
			current = 0
			continue
		}

		m.OnDiet++
		current++
		if current > m.BestStreak {
			m.BestStreak = current
		}
	}

	return m
}
