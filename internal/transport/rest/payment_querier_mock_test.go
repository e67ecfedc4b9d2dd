package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/service/query"
)

var _ paymentQuerier = &paymentQuerierMock{}

type paymentQuerierMock struct {
	PaymentsFunc func(ctx context.Context, q query.PaymentQuery) ([]domain.PaymentView, error)
	ViewsFunc    func(ctx context.Context, payments []domain.Payment) ([]domain.PaymentView, error)

	calls struct {
		Payments []struct {
			Ctx context.Context
			Q   query.PaymentQuery
		}
		Views []struct {
			Ctx      context.Context
			Payments []domain.Payment
		}
	}
	lockPayments sync.RWMutex
	lockViews    sync.RWMutex
}

func (mock *paymentQuerierMock) Payments(ctx context.Context, q query.PaymentQuery) ([]domain.PaymentView, error) {
	if mock.PaymentsFunc == nil {
		panic("paymentQuerierMock.PaymentsFunc: method is nil but paymentQuerier.Payments was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   query.PaymentQuery
	}{
		Ctx: ctx,
		Q:   q,
	}
	mock.lockPayments.Lock()
	mock.calls.Payments = append(mock.calls.Payments, callInfo)
	mock.lockPayments.Unlock()
	return mock.PaymentsFunc(ctx, q)
}

func (mock *paymentQuerierMock) PaymentsCalls() []struct {
	Ctx context.Context
	Q   query.PaymentQuery
} {
	var calls []struct {
		Ctx context.Context
		Q   query.PaymentQuery
	}
	mock.lockPayments.RLock()
	calls = mock.calls.Payments
	mock.lockPayments.RUnlock()
	return calls
}

func (mock *paymentQuerierMock) Views(ctx context.Context, payments []domain.Payment) ([]domain.PaymentView, error) {
	if mock.ViewsFunc == nil {
		panic("paymentQuerierMock.ViewsFunc: method is nil but paymentQuerier.Views was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Payments []domain.Payment
	}{
		Ctx:      ctx,
		Payments: payments,
	}
	mock.lockViews.Lock()
	mock.calls.Views = append(mock.calls.Views, callInfo)
	mock.lockViews.Unlock()
	return mock.ViewsFunc(ctx, payments)
}

func (mock *paymentQuerierMock) ViewsCalls() []struct {
	Ctx      context.Context
	Payments []domain.Payment
} {
	var calls []struct {
		Ctx      context.Context
		Payments []domain.Payment
	}
	mock.lockViews.RLock()
	calls = mock.calls.Views
	mock.lockViews.RUnlock()
	return calls
}
