package meal

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dailydiet-backend/internal/domain"
	"sync"
)

var _ mealRepo = &mealRepoMock{}

type mealRepoMock struct {
	CreateFunc  func(ctx context.Context, m *domain.Meal) (*domain.Meal, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, mealID uuid.UUID) error
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, mealID uuid.UUID) (*domain.Meal, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error)
	UpdateFunc  func(ctx context.Context, m *domain.Meal) (*domain.Meal, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			M   *domain.Meal
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			MealID uuid.UUID
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			MealID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			M   *domain.Meal
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *mealRepoMock) Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	if mock.CreateFunc == nil {
		panic("mealRepoMock.CreateFunc: method is nil but mealRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Meal
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *mealRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Meal
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *mealRepoMock) Delete(ctx context.Context, userID uuid.UUID, mealID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("mealRepoMock.DeleteFunc: method is nil but mealRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		MealID uuid.UUID
	}{Ctx: ctx, UserID: userID, MealID: mealID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, mealID)
}

func (mock *mealRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	MealID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *mealRepoMock) GetByID(ctx context.Context, userID uuid.UUID, mealID uuid.UUID) (*domain.Meal, error) {
	if mock.GetByIDFunc == nil {
		panic("mealRepoMock.GetByIDFunc: method is nil but mealRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		MealID uuid.UUID
	}{Ctx: ctx, UserID: userID, MealID: mealID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, mealID)
}

func (mock *mealRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	MealID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *mealRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error) {
	if mock.ListFunc == nil {
		panic("mealRepoMock.ListFunc: method is nil but mealRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *mealRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *mealRepoMock) Update(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	if mock.UpdateFunc == nil {
		panic("mealRepoMock.UpdateFunc: method is nil but mealRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Meal
	}{Ctx: ctx, M: m}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, m)
}

func (mock *mealRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	M   *domain.Meal
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
