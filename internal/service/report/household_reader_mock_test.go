package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var _ householdReader = &householdReaderMock{}

type householdReaderMock struct {
	GetByIDFunc     func(ctx context.Context, id int64) (*domain.Household, error)
	CountActiveFunc func(ctx context.Context) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		CountActive []struct {
			Ctx context.Context
		}
	}
	lockGetByID     sync.RWMutex
	lockCountActive sync.RWMutex
}

func (mock *householdReaderMock) GetByID(ctx context.Context, id int64) (*domain.Household, error) {
	if mock.GetByIDFunc == nil {
		panic("householdReaderMock.GetByIDFunc: method is nil but householdReader.GetByID was just called")
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

func (mock *householdReaderMock) GetByIDCalls() []struct {
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

func (mock *householdReaderMock) CountActive(ctx context.Context) (int, error) {
	if mock.CountActiveFunc == nil {
		panic("householdReaderMock.CountActiveFunc: method is nil but householdReader.CountActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountActive.Lock()
	mock.calls.CountActive = append(mock.calls.CountActive, callInfo)
	mock.lockCountActive.Unlock()
	return mock.CountActiveFunc(ctx)
}

func (mock *householdReaderMock) CountActiveCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCountActive.RLock()
	calls = mock.calls.CountActive
	mock.lockCountActive.RUnlock()
	return calls
}
