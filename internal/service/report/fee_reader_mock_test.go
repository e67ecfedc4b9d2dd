package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var _ feeReader = &feeReaderMock{}

type feeReaderMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Fee, error)
	CountFunc   func(ctx context.Context, filter domain.FeeFilter) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Count []struct {
			Ctx    context.Context
			Filter domain.FeeFilter
		}
	}
	lockGetByID sync.RWMutex
	lockCount   sync.RWMutex
}

func (mock *feeReaderMock) GetByID(ctx context.Context, id int64) (*domain.Fee, error) {
	if mock.GetByIDFunc == nil {
		panic("feeReaderMock.GetByIDFunc: method is nil but feeReader.GetByID was just called")
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

func (mock *feeReaderMock) GetByIDCalls() []struct {
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

func (mock *feeReaderMock) Count(ctx context.Context, filter domain.FeeFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("feeReaderMock.CountFunc: method is nil but feeReader.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.FeeFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, filter)
}

func (mock *feeReaderMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.FeeFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.FeeFilter
	}
	mock.lockCount.RLock()
	calls = mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
