package query

import (
	"context"
	"sync"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var _ feeSource = &feeSourceMock{}

type feeSourceMock struct {
	GetByIDsFunc func(ctx context.Context, ids []int64) ([]domain.Fee, error)
	ListFunc     func(ctx context.Context, filter domain.FeeFilter) ([]domain.Fee, error)

	calls struct {
		GetByIDs []struct {
			Ctx context.Context
			Ids []int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.FeeFilter
		}
	}
	lockGetByIDs sync.RWMutex
	lockList     sync.RWMutex
}

func (mock *feeSourceMock) GetByIDs(ctx context.Context, ids []int64) ([]domain.Fee, error) {
	if mock.GetByIDsFunc == nil {
		panic("feeSourceMock.GetByIDsFunc: method is nil but feeSource.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []int64
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *feeSourceMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []int64
} {
	var calls []struct {
		Ctx context.Context
		Ids []int64
	}
	mock.lockGetByIDs.RLock()
	calls = mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *feeSourceMock) List(ctx context.Context, filter domain.FeeFilter) ([]domain.Fee, error) {
	if mock.ListFunc == nil {
		panic("feeSourceMock.ListFunc: method is nil but feeSource.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.FeeFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *feeSourceMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.FeeFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.FeeFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
