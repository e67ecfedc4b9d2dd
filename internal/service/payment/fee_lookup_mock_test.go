package payment

import (
	"context"
	"sync"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var _ feeLookup = &feeLookupMock{}

type feeLookupMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Fee, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *feeLookupMock) GetByID(ctx context.Context, id int64) (*domain.Fee, error) {
	if mock.GetByIDFunc == nil {
		panic("feeLookupMock.GetByIDFunc: method is nil but feeLookup.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *feeLookupMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
