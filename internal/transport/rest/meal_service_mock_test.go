package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dailydiet-backend/internal/domain"
	"github.com/heartmarshall/dailydiet-backend/internal/service/meal"
	"sync"
)

var _ mealService = &mealServiceMock{}

type mealServiceMock struct {
	CreateMealFunc func(ctx context.Context, input meal.MealInput) (*domain.Meal, error)
	DeleteMealFunc func(ctx context.Context, mealID uuid.UUID) error
	GetMealFunc    func(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error)
	ListMealsFunc  func(ctx context.Context) ([]*domain.Meal, error)
	MetricsFunc    func(ctx context.Context) (domain.Metrics, error)
	UpdateMealFunc func(ctx context.Context, mealID uuid.UUID, input meal.MealInput) (*domain.Meal, error)

	calls struct {
		CreateMeal []struct {
			Ctx   context.Context
			Input meal.MealInput
		}
		DeleteMeal []struct {
			Ctx    context.Context
			MealID uuid.UUID
		}
		GetMeal []struct {
			Ctx    context.Context
			MealID uuid.UUID
		}
		ListMeals []struct {
			Ctx context.Context
		}
		Metrics []struct {
			Ctx context.Context
		}
		UpdateMeal []struct {
			Ctx    context.Context
			MealID uuid.UUID
			Input  meal.MealInput
		}
	}
	lockCreateMeal sync.RWMutex
	lockDeleteMeal sync.RWMutex
	lockGetMeal    sync.RWMutex
	lockListMeals  sync.RWMutex
	lockMetrics    sync.RWMutex
	lockUpdateMeal sync.RWMutex
}

func (mock *mealServiceMock) CreateMeal(ctx context.Context, input meal.MealInput) (*domain.Meal, error) {
	if mock.CreateMealFunc == nil {
		panic("mealServiceMock.CreateMealFunc: method is nil but mealService.CreateMeal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input meal.MealInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateMeal.Lock()
	mock.calls.CreateMeal = append(mock.calls.CreateMeal, callInfo)
	mock.lockCreateMeal.Unlock()
	return mock.CreateMealFunc(ctx, input)
}

func (mock *mealServiceMock) CreateMealCalls() []struct {
	Ctx   context.Context
	Input meal.MealInput
} {
	mock.lockCreateMeal.RLock()
	calls := mock.calls.CreateMeal
	mock.lockCreateMeal.RUnlock()
	return calls
}

func (mock *mealServiceMock) DeleteMeal(ctx context.Context, mealID uuid.UUID) error {
	if mock.DeleteMealFunc == nil {
		panic("mealServiceMock.DeleteMealFunc: method is nil but mealService.DeleteMeal was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		MealID uuid.UUID
	}{Ctx: ctx, MealID: mealID}
	mock.lockDeleteMeal.Lock()
	mock.calls.DeleteMeal = append(mock.calls.DeleteMeal, callInfo)
	mock.lockDeleteMeal.Unlock()
	return mock.DeleteMealFunc(ctx, mealID)
}

func (mock *mealServiceMock) DeleteMealCalls() []struct {
	Ctx    context.Context
	MealID uuid.UUID
} {
	mock.lockDeleteMeal.RLock()
	calls := mock.calls.DeleteMeal
	mock.lockDeleteMeal.RUnlock()
	return calls
}

func (mock *mealServiceMock) GetMeal(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error) {
	if mock.GetMealFunc == nil {
		panic("mealServiceMock.GetMealFunc: method is nil but mealService.GetMeal was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		MealID uuid.UUID
	}{Ctx: ctx, MealID: mealID}
	mock.lockGetMeal.Lock()
	mock.calls.GetMeal = append(mock.calls.GetMeal, callInfo)
	mock.lockGetMeal.Unlock()
	return mock.GetMealFunc(ctx, mealID)
}

func (mock *mealServiceMock) GetMealCalls() []struct {
	Ctx    context.Context
	MealID uuid.UUID
} {
	mock.lockGetMeal.RLock()
	calls := mock.calls.GetMeal
	mock.lockGetMeal.RUnlock()
	return calls
}

func (mock *mealServiceMock) ListMeals(ctx context.Context) ([]*domain.Meal, error) {
	if mock.ListMealsFunc == nil {
		panic("mealServiceMock.ListMealsFunc: method is nil but mealService.ListMeals was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListMeals.Lock()
	mock.calls.ListMeals = append(mock.calls.ListMeals, callInfo)
	mock.lockListMeals.Unlock()
	return mock.ListMealsFunc(ctx)
}

func (mock *mealServiceMock) ListMealsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListMeals.RLock()
	calls := mock.calls.ListMeals
	mock.lockListMeals.RUnlock()
	return calls
}

func (mock *mealServiceMock) Metrics(ctx context.Context) (domain.Metrics, error) {
	if mock.MetricsFunc == nil {
		panic("mealServiceMock.MetricsFunc: method is nil but mealService.Metrics was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMetrics.Lock()
	mock.calls.Metrics = append(mock.calls.Metrics, callInfo)
	mock.lockMetrics.Unlock()
	return mock.MetricsFunc(ctx)
}

func (mock *mealServiceMock) MetricsCalls() []struct {
	Ctx context.Context
} {
	mock.lockMetrics.RLock()
	calls := mock.calls.Metrics
	mock.lockMetrics.RUnlock()
	return calls
}

func (mock *mealServiceMock) UpdateMeal(ctx context.Context, mealID uuid.UUID, input meal.MealInput) (*domain.Meal, error) {
	if mock.UpdateMealFunc == nil {
		panic("mealServiceMock.UpdateMealFunc: method is nil but mealService.UpdateMeal was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		MealID uuid.UUID
		Input  meal.MealInput
	}{Ctx: ctx, MealID: mealID, Input: input}
	mock.lockUpdateMeal.Lock()
	mock.calls.UpdateMeal = append(mock.calls.UpdateMeal, callInfo)
	mock.lockUpdateMeal.Unlock()
	return mock.UpdateMealFunc(ctx, mealID, input)
}

func (mock *mealServiceMock) UpdateMealCalls() []struct {
	Ctx    context.Context
	MealID uuid.UUID
	Input  meal.MealInput
} {
	mock.lockUpdateMeal.RLock()
	calls := mock.calls.UpdateMeal
	mock.lockUpdateMeal.RUnlock()
	return calls
}
