package payment

import (
	"context"
	"sync"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var _ householdLookup = &householdLookupMock{}

type householdLookupMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Household, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *householdLookupMock) GetByID(ctx context.Context, id int64) (*domain.Household, error) {
	if mock.GetByIDFunc == nil {
		panic("householdLookupMock.GetByIDFunc: method is nil but householdLookup.GetByID was just called")
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

func (mock *householdLookupMock) GetByIDCalls() []struct {
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
