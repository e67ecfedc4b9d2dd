package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/service/payment"
)

var _ paymentService = &paymentServiceMock{}

type paymentServiceMock struct {
	GetPaymentFunc                  func(ctx context.Context, id int64) (*domain.Payment, error)
	FindByHouseholdAndFeeFunc       func(ctx context.Context, householdID int64, feeID int64) (*domain.Payment, error)
	ListByHouseholdFunc             func(ctx context.Context, householdID int64) ([]domain.Payment, error)
	ListByFeeFunc                   func(ctx context.Context, feeID int64) ([]domain.Payment, error)
	ListByDateRangeFunc             func(ctx context.Context, r domain.DateRange) ([]domain.Payment, error)
	ListByHouseholdAndDateRangeFunc func(ctx context.Context, householdID int64, r domain.DateRange) ([]domain.Payment, error)
	ListUnverifiedFunc              func(ctx context.Context) ([]domain.Payment, error)
	TotalByHouseholdFunc            func(ctx context.Context, householdID int64) (float64, error)
	TotalByFeeFunc                  func(ctx context.Context, feeID int64) (float64, error)
	TotalByDateRangeFunc            func(ctx context.Context, r domain.DateRange) (float64, error)
	CreatePaymentFunc               func(ctx context.Context, input payment.CreatePaymentInput) (*domain.Payment, error)
	UpdatePaymentFunc               func(ctx context.Context, id int64, patch domain.PaymentPatch) (*domain.Payment, error)
	VerifyPaymentFunc               func(ctx context.Context, id int64) (*domain.Payment, error)
	UnverifyPaymentFunc             func(ctx context.Context, id int64) (*domain.Payment, error)
	DeletePaymentFunc               func(ctx context.Context, id int64) error

	calls struct {
		GetPayment []struct {
			Ctx context.Context
			ID  int64
		}
		FindByHouseholdAndFee []struct {
			Ctx         context.Context
			HouseholdID int64
			FeeID       int64
		}
		ListByHousehold []struct {
			Ctx         context.Context
			HouseholdID int64
		}
		ListByFee []struct {
			Ctx   context.Context
			FeeID int64
		}
		ListByDateRange []struct {
			Ctx context.Context
			R   domain.DateRange
		}
		ListByHouseholdAndDateRange []struct {
			Ctx         context.Context
			HouseholdID int64
			R           domain.DateRange
		}
		ListUnverified []struct {
			Ctx context.Context
		}
		TotalByHousehold []struct {
			Ctx         context.Context
			HouseholdID int64
		}
		TotalByFee []struct {
			Ctx   context.Context
			FeeID int64
		}
		TotalByDateRange []struct {
			Ctx context.Context
			R   domain.DateRange
		}
		CreatePayment []struct {
			Ctx   context.Context
			Input payment.CreatePaymentInput
		}
		UpdatePayment []struct {
			Ctx   context.Context
			ID    int64
			Patch domain.PaymentPatch
		}
		VerifyPayment []struct {
			Ctx context.Context
			ID  int64
		}
		UnverifyPayment []struct {
			Ctx context.Context
			ID  int64
		}
		DeletePayment []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetPayment                  sync.RWMutex
	lockFindByHouseholdAndFee       sync.RWMutex
	lockListByHousehold             sync.RWMutex
	lockListByFee                   sync.RWMutex
	lockListByDateRange             sync.RWMutex
	lockListByHouseholdAndDateRange sync.RWMutex
	lockListUnverified              sync.RWMutex
	lockTotalByHousehold            sync.RWMutex
	lockTotalByFee                  sync.RWMutex
	lockTotalByDateRange            sync.RWMutex
	lockCreatePayment               sync.RWMutex
	lockUpdatePayment               sync.RWMutex
	lockVerifyPayment               sync.RWMutex
	lockUnverifyPayment             sync.RWMutex
	lockDeletePayment               sync.RWMutex
}

func (mock *paymentServiceMock) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	if mock.GetPaymentFunc == nil {
		panic("paymentServiceMock.GetPaymentFunc: method is nil but paymentService.GetPayment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetPayment.Lock()
	mock.calls.GetPayment = append(mock.calls.GetPayment, callInfo)
	mock.lockGetPayment.Unlock()
	return mock.GetPaymentFunc(ctx, id)
}

func (mock *paymentServiceMock) GetPaymentCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetPayment.RLock()
	calls = mock.calls.GetPayment
	mock.lockGetPayment.RUnlock()
	return calls
}

func (mock *paymentServiceMock) FindByHouseholdAndFee(ctx context.Context, householdID int64, feeID int64) (*domain.Payment, error) {
	if mock.FindByHouseholdAndFeeFunc == nil {
		panic("paymentServiceMock.FindByHouseholdAndFeeFunc: method is nil but paymentService.FindByHouseholdAndFee was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		HouseholdID int64
		FeeID       int64
	}{
		Ctx:         ctx,
		HouseholdID: householdID,
		FeeID:       feeID,
	}
	mock.lockFindByHouseholdAndFee.Lock()
	mock.calls.FindByHouseholdAndFee = append(mock.calls.FindByHouseholdAndFee, callInfo)
	mock.lockFindByHouseholdAndFee.Unlock()
	return mock.FindByHouseholdAndFeeFunc(ctx, householdID, feeID)
}

func (mock *paymentServiceMock) FindByHouseholdAndFeeCalls() []struct {
	Ctx         context.Context
	HouseholdID int64
	FeeID       int64
} {
	var calls []struct {
		Ctx         context.Context
		HouseholdID int64
		FeeID       int64
	}
	mock.lockFindByHouseholdAndFee.RLock()
	calls = mock.calls.FindByHouseholdAndFee
	mock.lockFindByHouseholdAndFee.RUnlock()
	return calls
}

func (mock *paymentServiceMock) ListByHousehold(ctx context.Context, householdID int64) ([]domain.Payment, error) {
	if mock.ListByHouseholdFunc == nil {
		panic("paymentServiceMock.ListByHouseholdFunc: method is nil but paymentService.ListByHousehold was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		HouseholdID int64
	}{
		Ctx:         ctx,
		HouseholdID: householdID,
	}
	mock.lockListByHousehold.Lock()
	mock.calls.ListByHousehold = append(mock.calls.ListByHousehold, callInfo)
	mock.lockListByHousehold.Unlock()
	return mock.ListByHouseholdFunc(ctx, householdID)
}

func (mock *paymentServiceMock) ListByHouseholdCalls() []struct {
	Ctx         context.Context
	HouseholdID int64
} {
	var calls []struct {
		Ctx         context.Context
		HouseholdID int64
	}
	mock.lockListByHousehold.RLock()
	calls = mock.calls.ListByHousehold
	mock.lockListByHousehold.RUnlock()
	return calls
}

func (mock *paymentServiceMock) ListByFee(ctx context.Context, feeID int64) ([]domain.Payment, error) {
	if mock.ListByFeeFunc == nil {
		panic("paymentServiceMock.ListByFeeFunc: method is nil but paymentService.ListByFee was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		FeeID int64
	}{
		Ctx:   ctx,
		FeeID: feeID,
	}
	mock.lockListByFee.Lock()
	mock.calls.ListByFee = append(mock.calls.ListByFee, callInfo)
	mock.lockListByFee.Unlock()
	return mock.ListByFeeFunc(ctx, feeID)
}

func (mock *paymentServiceMock) ListByFeeCalls() []struct {
	Ctx   context.Context
	FeeID int64
} {
	var calls []struct {
		Ctx   context.Context
		FeeID int64
	}
	mock.lockListByFee.RLock()
	calls = mock.calls.ListByFee
	mock.lockListByFee.RUnlock()
	return calls
}

func (mock *paymentServiceMock) ListByDateRange(ctx context.Context, r domain.DateRange) ([]domain.Payment, error) {
	if mock.ListByDateRangeFunc == nil {
		panic("paymentServiceMock.ListByDateRangeFunc: method is nil but paymentService.ListByDateRange was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   domain.DateRange
	}{
		Ctx: ctx,
		R:   r,
	}
	mock.lockListByDateRange.Lock()
	mock.calls.ListByDateRange = append(mock.calls.ListByDateRange, callInfo)
	mock.lockListByDateRange.Unlock()
	return mock.ListByDateRangeFunc(ctx, r)
}

func (mock *paymentServiceMock) ListByDateRangeCalls() []struct {
	Ctx context.Context
	R   domain.DateRange
} {
	var calls []struct {
		Ctx context.Context
		R   domain.DateRange
	}
	mock.lockListByDateRange.RLock()
	calls = mock.calls.ListByDateRange
	mock.lockListByDateRange.RUnlock()
	return calls
}

func (mock *paymentServiceMock) ListByHouseholdAndDateRange(ctx context.Context, householdID int64, r domain.DateRange) ([]domain.Payment, error) {
	if mock.ListByHouseholdAndDateRangeFunc == nil {
		panic("paymentServiceMock.ListByHouseholdAndDateRangeFunc: method is nil but paymentService.ListByHouseholdAndDateRange was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		HouseholdID int64
		R           domain.DateRange
	}{
		Ctx:         ctx,
		HouseholdID: householdID,
		R:           r,
	}
	mock.lockListByHouseholdAndDateRange.Lock()
	mock.calls.ListByHouseholdAndDateRange = append(mock.calls.ListByHouseholdAndDateRange, callInfo)
	mock.lockListByHouseholdAndDateRange.Unlock()
	return mock.ListByHouseholdAndDateRangeFunc(ctx, householdID, r)
}

func (mock *paymentServiceMock) ListByHouseholdAndDateRangeCalls() []struct {
	Ctx         context.Context
	HouseholdID int64
	R           domain.DateRange
} {
	var calls []struct {
		Ctx         context.Context
		HouseholdID int64
		R           domain.DateRange
	}
	mock.lockListByHouseholdAndDateRange.RLock()
	calls = mock.calls.ListByHouseholdAndDateRange
	mock.lockListByHouseholdAndDateRange.RUnlock()
	return calls
}

func (mock *paymentServiceMock) ListUnverified(ctx context.Context) ([]domain.Payment, error) {
	if mock.ListUnverifiedFunc == nil {
		panic("paymentServiceMock.ListUnverifiedFunc: method is nil but paymentService.ListUnverified was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListUnverified.Lock()
	mock.calls.ListUnverified = append(mock.calls.ListUnverified, callInfo)
	mock.lockListUnverified.Unlock()
	return mock.ListUnverifiedFunc(ctx)
}

func (mock *paymentServiceMock) ListUnverifiedCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListUnverified.RLock()
	calls = mock.calls.ListUnverified
	mock.lockListUnverified.RUnlock()
	return calls
}

func (mock *paymentServiceMock) TotalByHousehold(ctx context.Context, householdID int64) (float64, error) {
	if mock.TotalByHouseholdFunc == nil {
		panic("paymentServiceMock.TotalByHouseholdFunc: method is nil but paymentService.TotalByHousehold was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		HouseholdID int64
	}{
		Ctx:         ctx,
		HouseholdID: householdID,
	}
	mock.lockTotalByHousehold.Lock()
	mock.calls.TotalByHousehold = append(mock.calls.TotalByHousehold, callInfo)
	mock.lockTotalByHousehold.Unlock()
	return mock.TotalByHouseholdFunc(ctx, householdID)
}

func (mock *paymentServiceMock) TotalByHouseholdCalls() []struct {
	Ctx         context.Context
	HouseholdID int64
} {
	var calls []struct {
		Ctx         context.Context
		HouseholdID int64
	}
	mock.lockTotalByHousehold.RLock()
	calls = mock.calls.TotalByHousehold
	mock.lockTotalByHousehold.RUnlock()
	return calls
}

func (mock *paymentServiceMock) TotalByFee(ctx context.Context, feeID int64) (float64, error) {
	if mock.TotalByFeeFunc == nil {
		panic("paymentServiceMock.TotalByFeeFunc: method is nil but paymentService.TotalByFee was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		FeeID int64
	}{
		Ctx:   ctx,
		FeeID: feeID,
	}
	mock.lockTotalByFee.Lock()
	mock.calls.TotalByFee = append(mock.calls.TotalByFee, callInfo)
	mock.lockTotalByFee.Unlock()
	return mock.TotalByFeeFunc(ctx, feeID)
}

func (mock *paymentServiceMock) TotalByFeeCalls() []struct {
	Ctx   context.Context
	FeeID int64
} {
	var calls []struct {
		Ctx   context.Context
		FeeID int64
	}
	mock.lockTotalByFee.RLock()
	calls = mock.calls.TotalByFee
	mock.lockTotalByFee.RUnlock()
	return calls
}

func (mock *paymentServiceMock) TotalByDateRange(ctx context.Context, r domain.DateRange) (float64, error) {
	if mock.TotalByDateRangeFunc == nil {
		panic("paymentServiceMock.TotalByDateRangeFunc: method is nil but paymentService.TotalByDateRange was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   domain.DateRange
	}{
		Ctx: ctx,
		R:   r,
	}
	mock.lockTotalByDateRange.Lock()
	mock.calls.TotalByDateRange = append(mock.calls.TotalByDateRange, callInfo)
	mock.lockTotalByDateRange.Unlock()
	return mock.TotalByDateRangeFunc(ctx, r)
}

func (mock *paymentServiceMock) TotalByDateRangeCalls() []struct {
	Ctx context.Context
	R   domain.DateRange
} {
	var calls []struct {
		Ctx context.Context
		R   domain.DateRange
	}
	mock.lockTotalByDateRange.RLock()
	calls = mock.calls.TotalByDateRange
	mock.lockTotalByDateRange.RUnlock()
	return calls
}

func (mock *paymentServiceMock) CreatePayment(ctx context.Context, input payment.CreatePaymentInput) (*domain.Payment, error) {
	if mock.CreatePaymentFunc == nil {
		panic("paymentServiceMock.CreatePaymentFunc: method is nil but paymentService.CreatePayment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input payment.CreatePaymentInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreatePayment.Lock()
	mock.calls.CreatePayment = append(mock.calls.CreatePayment, callInfo)
	mock.lockCreatePayment.Unlock()
	return mock.CreatePaymentFunc(ctx, input)
}

func (mock *paymentServiceMock) CreatePaymentCalls() []struct {
	Ctx   context.Context
	Input payment.CreatePaymentInput
} {
	var calls []struct {
		Ctx   context.Context
		Input payment.CreatePaymentInput
	}
	mock.lockCreatePayment.RLock()
	calls = mock.calls.CreatePayment
	mock.lockCreatePayment.RUnlock()
	return calls
}

func (mock *paymentServiceMock) UpdatePayment(ctx context.Context, id int64, patch domain.PaymentPatch) (*domain.Payment, error) {
	if mock.UpdatePaymentFunc == nil {
		panic("paymentServiceMock.UpdatePaymentFunc: method is nil but paymentService.UpdatePayment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    int64
		Patch domain.PaymentPatch
	}{
		Ctx:   ctx,
		ID:    id,
		Patch: patch,
	}
	mock.lockUpdatePayment.Lock()
	mock.calls.UpdatePayment = append(mock.calls.UpdatePayment, callInfo)
	mock.lockUpdatePayment.Unlock()
	return mock.UpdatePaymentFunc(ctx, id, patch)
}

func (mock *paymentServiceMock) UpdatePaymentCalls() []struct {
	Ctx   context.Context
	ID    int64
	Patch domain.PaymentPatch
} {
	var calls []struct {
		Ctx   context.Context
		ID    int64
		Patch domain.PaymentPatch
	}
	mock.lockUpdatePayment.RLock()
	calls = mock.calls.UpdatePayment
	mock.lockUpdatePayment.RUnlock()
	return calls
}

func (mock *paymentServiceMock) VerifyPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	if mock.VerifyPaymentFunc == nil {
		panic("paymentServiceMock.VerifyPaymentFunc: method is nil but paymentService.VerifyPayment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockVerifyPayment.Lock()
	mock.calls.VerifyPayment = append(mock.calls.VerifyPayment, callInfo)
	mock.lockVerifyPayment.Unlock()
	return mock.VerifyPaymentFunc(ctx, id)
}

func (mock *paymentServiceMock) VerifyPaymentCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockVerifyPayment.RLock()
	calls = mock.calls.VerifyPayment
	mock.lockVerifyPayment.RUnlock()
	return calls
}

func (mock *paymentServiceMock) UnverifyPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	if mock.UnverifyPaymentFunc == nil {
		panic("paymentServiceMock.UnverifyPaymentFunc: method is nil but paymentService.UnverifyPayment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockUnverifyPayment.Lock()
	mock.calls.UnverifyPayment = append(mock.calls.UnverifyPayment, callInfo)
	mock.lockUnverifyPayment.Unlock()
	return mock.UnverifyPaymentFunc(ctx, id)
}

func (mock *paymentServiceMock) UnverifyPaymentCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockUnverifyPayment.RLock()
	calls = mock.calls.UnverifyPayment
	mock.lockUnverifyPayment.RUnlock()
	return calls
}

func (mock *paymentServiceMock) DeletePayment(ctx context.Context, id int64) error {
	if mock.DeletePaymentFunc == nil {
		panic("paymentServiceMock.DeletePaymentFunc: method is nil but paymentService.DeletePayment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeletePayment.Lock()
	mock.calls.DeletePayment = append(mock.calls.DeletePayment, callInfo)
	mock.lockDeletePayment.Unlock()
	return mock.DeletePaymentFunc(ctx, id)
}

func (mock *paymentServiceMock) DeletePaymentCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockDeletePayment.RLock()
	calls = mock.calls.DeletePayment
	mock.lockDeletePayment.RUnlock()
	return calls
}
