package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var _ paymentAggregator = &paymentAggregatorMock{}

type paymentAggregatorMock struct {
	AggregateFunc func(ctx context.Context, filter domain.PaymentFilter) (domain.PaymentAggregate, error)

	calls struct {
		Aggregate []struct {
			Ctx    context.Context
			Filter domain.PaymentFilter
		}
	}
	lockAggregate sync.RWMutex
}

func (mock *paymentAggregatorMock) Aggregate(ctx context.Context, filter domain.PaymentFilter) (domain.PaymentAggregate, error) {
	if mock.AggregateFunc == nil {
		panic("paymentAggregatorMock.AggregateFunc: method is nil but paymentAggregator.Aggregate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.PaymentFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockAggregate.Lock()
	mock.calls.Aggregate = append(mock.calls.Aggregate, callInfo)
	mock.lockAggregate.Unlock()
	return mock.AggregateFunc(ctx, filter)
}

func (mock *paymentAggregatorMock) AggregateCalls() []struct {
	Ctx    context.Context
	Filter domain.PaymentFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.PaymentFilter
	}
	mock.lockAggregate.RLock()
	calls = mock.calls.Aggregate
	mock.lockAggregate.RUnlock()
	return calls
}
