package query

import (
	"context"
	"sync"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var _ paymentLister = &paymentListerMock{}

type paymentListerMock struct {
	ListFunc func(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.PaymentFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *paymentListerMock) List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error) {
	if mock.ListFunc == nil {
		panic("paymentListerMock.ListFunc: method is nil but paymentLister.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.PaymentFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *paymentListerMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.PaymentFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.PaymentFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
