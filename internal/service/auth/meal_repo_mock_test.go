package auth

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ mealRepo = &mealRepoMock{}

type mealRepoMock struct {
	DeleteAllFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		DeleteAll []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockDeleteAll sync.RWMutex
}

func (mock *mealRepoMock) DeleteAll(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.DeleteAllFunc == nil {
		panic("mealRepoMock.DeleteAllFunc: method is nil but mealRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx, userID)
}

func (mock *mealRepoMock) DeleteAllCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}
