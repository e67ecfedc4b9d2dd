package fee

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var _ feeRepo = &feeRepoMock{}

type feeRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Fee, error)
	GetByIDForUpdateFunc func(ctx context.Context, id int64) (*domain.Fee, error)
	ListFunc             func(ctx context.Context, filter domain.FeeFilter) ([]domain.Fee, error)
	CreateFunc           func(ctx context.Context, f domain.Fee) (domain.Fee, error)
	UpdateFunc           func(ctx context.Context, f domain.Fee) (domain.Fee, error)
	SetActiveFunc        func(ctx context.Context, id int64, active bool) (domain.Fee, error)
	DeleteFunc           func(ctx context.Context, id int64) error
	PurgeInactiveFunc    func(ctx context.Context, cutoff time.Time) (int64, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.FeeFilter
		}
		Create []struct {
			Ctx context.Context
			F   domain.Fee
		}
		Update []struct {
			Ctx context.Context
			F   domain.Fee
		}
		SetActive []struct {
			Ctx    context.Context
			ID     int64
			Active bool
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		PurgeInactive []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockSetActive        sync.RWMutex
	lockDelete           sync.RWMutex
	lockPurgeInactive    sync.RWMutex
}

func (mock *feeRepoMock) GetByID(ctx context.Context, id int64) (*domain.Fee, error) {
	if mock.GetByIDFunc == nil {
		panic("feeRepoMock.GetByIDFunc: method is nil but feeRepo.GetByID was just called")
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

func (mock *feeRepoMock) GetByIDCalls() []struct {
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

func (mock *feeRepoMock) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Fee, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("feeRepoMock.GetByIDForUpdateFunc: method is nil but feeRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *feeRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetByIDForUpdate.RLock()
	calls = mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *feeRepoMock) List(ctx context.Context, filter domain.FeeFilter) ([]domain.Fee, error) {
	if mock.ListFunc == nil {
		panic("feeRepoMock.ListFunc: method is nil but feeRepo.List was just called")
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

func (mock *feeRepoMock) ListCalls() []struct {
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

func (mock *feeRepoMock) Create(ctx context.Context, f domain.Fee) (domain.Fee, error) {
	if mock.CreateFunc == nil {
		panic("feeRepoMock.CreateFunc: method is nil but feeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.Fee
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *feeRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   domain.Fee
} {
	var calls []struct {
		Ctx context.Context
		F   domain.Fee
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *feeRepoMock) Update(ctx context.Context, f domain.Fee) (domain.Fee, error) {
	if mock.UpdateFunc == nil {
		panic("feeRepoMock.UpdateFunc: method is nil but feeRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.Fee
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, f)
}

func (mock *feeRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	F   domain.Fee
} {
	var calls []struct {
		Ctx context.Context
		F   domain.Fee
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *feeRepoMock) SetActive(ctx context.Context, id int64, active bool) (domain.Fee, error) {
	if mock.SetActiveFunc == nil {
		panic("feeRepoMock.SetActiveFunc: method is nil but feeRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Active bool
	}{
		Ctx:    ctx,
		ID:     id,
		Active: active,
	}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, id, active)
}

func (mock *feeRepoMock) SetActiveCalls() []struct {
	Ctx    context.Context
	ID     int64
	Active bool
} {
	var calls []struct {
		Ctx    context.Context
		ID     int64
		Active bool
	}
	mock.lockSetActive.RLock()
	calls = mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}

func (mock *feeRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("feeRepoMock.DeleteFunc: method is nil but feeRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *feeRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *feeRepoMock) PurgeInactive(ctx context.Context, cutoff time.Time) (int64, error) {
	if mock.PurgeInactiveFunc == nil {
		panic("feeRepoMock.PurgeInactiveFunc: method is nil but feeRepo.PurgeInactive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{
		Ctx:    ctx,
		Cutoff: cutoff,
	}
	mock.lockPurgeInactive.Lock()
	mock.calls.PurgeInactive = append(mock.calls.PurgeInactive, callInfo)
	mock.lockPurgeInactive.Unlock()
	return mock.PurgeInactiveFunc(ctx, cutoff)
}

func (mock *feeRepoMock) PurgeInactiveCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	var calls []struct {
		Ctx    context.Context
		Cutoff time.Time
	}
	mock.lockPurgeInactive.RLock()
	calls = mock.calls.PurgeInactive
	mock.lockPurgeInactive.RUnlock()
	return calls
}
