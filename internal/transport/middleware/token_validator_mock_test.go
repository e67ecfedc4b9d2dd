package middleware

import (
	"context"
	"sync"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	CheckFunc func(ctx context.Context, token string) (domain.Principal, error)

	calls struct {
		Check []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockCheck sync.RWMutex
}

func (mock *tokenValidatorMock) Check(ctx context.Context, token string) (domain.Principal, error) {
	if mock.CheckFunc == nil {
		panic("tokenValidatorMock.CheckFunc: method is nil but tokenValidator.Check was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockCheck.Lock()
	mock.calls.Check = append(mock.calls.Check, callInfo)
	mock.lockCheck.Unlock()
	return mock.CheckFunc(ctx, token)
}

func (mock *tokenValidatorMock) CheckCalls() []struct {
	Ctx   context.Context
	Token string
} {
	var calls []struct {
		Ctx   context.Context
		Token string
	}
	mock.lockCheck.RLock()
	calls = mock.calls.Check
	mock.lockCheck.RUnlock()
	return calls
}
