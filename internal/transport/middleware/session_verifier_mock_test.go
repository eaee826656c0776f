package middleware

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ sessionVerifier = &sessionVerifierMock{}

type sessionVerifierMock struct {
	ValidateTokenFunc func(ctx context.Context, bearer string) (uuid.UUID, error)

	calls struct {
		ValidateToken []struct {
			Ctx    context.Context
			Bearer string
		}
	}
	lockValidateToken sync.RWMutex
}

func (mock *sessionVerifierMock) ValidateToken(ctx context.Context, bearer string) (uuid.UUID, error) {
	if mock.ValidateTokenFunc == nil {
		panic("sessionVerifierMock.ValidateTokenFunc: method is nil but sessionVerifier.ValidateToken was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Bearer string
	}{Ctx: ctx, Bearer: bearer}
	mock.lockValidateToken.Lock()
	mock.calls.ValidateToken = append(mock.calls.ValidateToken, callInfo)
	mock.lockValidateToken.Unlock()
	return mock.ValidateTokenFunc(ctx, bearer)
}

func (mock *sessionVerifierMock) ValidateTokenCalls() []struct {
	Ctx    context.Context
	Bearer string
} {
	mock.lockValidateToken.RLock()
	calls := mock.calls.ValidateToken
	mock.lockValidateToken.RUnlock()
	return calls
}
