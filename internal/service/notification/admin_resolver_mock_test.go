package notification

import (
	"context"
	"sync"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var _ adminResolver = &adminResolverMock{}

type adminResolverMock struct {
	FindAdminFunc func(ctx context.Context) (*domain.User, error)

	calls struct {
		FindAdmin []struct {
			Ctx context.Context
		}
	}
	lockFindAdmin sync.RWMutex
}

func (mock *adminResolverMock) FindAdmin(ctx context.Context) (*domain.User, error) {
	if mock.FindAdminFunc == nil {
		panic("adminResolverMock.FindAdminFunc: method is nil but adminResolver.FindAdmin was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockFindAdmin.Lock()
	mock.calls.FindAdmin = append(mock.calls.FindAdmin, callInfo)
	mock.lockFindAdmin.Unlock()
	return mock.FindAdminFunc(ctx)
}

func (mock *adminResolverMock) FindAdminCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockFindAdmin.RLock()
	calls = mock.calls.FindAdmin
	mock.lockFindAdmin.RUnlock()
	return calls
}
