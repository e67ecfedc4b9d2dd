package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*domain.User, error)
	FindFirstAdminFunc   func(ctx context.Context) (*domain.User, error)
	ListFunc             func(ctx context.Context) ([]domain.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	CountFunc            func(ctx context.Context) (int, error)
	CreateFunc           func(ctx context.Context, u domain.User) (domain.User, error)
	UpdateFunc           func(ctx context.Context, u domain.User) (domain.User, error)
	UpdatePasswordFunc   func(ctx context.Context, id int64, hash string) error
	DeleteFunc           func(ctx context.Context, id int64) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		FindFirstAdmin []struct {
			Ctx context.Context
		}
		List []struct {
			Ctx context.Context
		}
		ExistsByUsername []struct {
			Ctx      context.Context
			Username string
		}
		ExistsByEmail []struct {
			Ctx   context.Context
			Email string
		}
		Count []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			U   domain.User
		}
		Update []struct {
			Ctx context.Context
			U   domain.User
		}
		UpdatePassword []struct {
			Ctx  context.Context
			ID   int64
			Hash string
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByUsername    sync.RWMutex
	lockFindFirstAdmin   sync.RWMutex
	lockList             sync.RWMutex
	lockExistsByUsername sync.RWMutex
	lockExistsByEmail    sync.RWMutex
	lockCount            sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockUpdatePassword   sync.RWMutex
	lockDelete           sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
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

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	var calls []struct {
		Ctx      context.Context
		Username string
	}
	mock.lockGetByUsername.RLock()
	calls = mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

func (mock *userRepoMock) FindFirstAdmin(ctx context.Context) (*domain.User, error) {
	if mock.FindFirstAdminFunc == nil {
		panic("userRepoMock.FindFirstAdminFunc: method is nil but userRepo.FindFirstAdmin was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockFindFirstAdmin.Lock()
	mock.calls.FindFirstAdmin = append(mock.calls.FindFirstAdmin, callInfo)
	mock.lockFindFirstAdmin.Unlock()
	return mock.FindFirstAdminFunc(ctx)
}

func (mock *userRepoMock) FindFirstAdminCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockFindFirstAdmin.RLock()
	calls = mock.calls.FindFirstAdmin
	mock.lockFindFirstAdmin.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if mock.ExistsByUsernameFunc == nil {
		panic("userRepoMock.ExistsByUsernameFunc: method is nil but userRepo.ExistsByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockExistsByUsername.Lock()
	mock.calls.ExistsByUsername = append(mock.calls.ExistsByUsername, callInfo)
	mock.lockExistsByUsername.Unlock()
	return mock.ExistsByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) ExistsByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	var calls []struct {
		Ctx      context.Context
		Username string
	}
	mock.lockExistsByUsername.RLock()
	calls = mock.calls.ExistsByUsername
	mock.lockExistsByUsername.RUnlock()
	return calls
}

func (mock *userRepoMock) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if mock.ExistsByEmailFunc == nil {
		panic("userRepoMock.ExistsByEmailFunc: method is nil but userRepo.ExistsByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockExistsByEmail.Lock()
	mock.calls.ExistsByEmail = append(mock.calls.ExistsByEmail, callInfo)
	mock.lockExistsByEmail.Unlock()
	return mock.ExistsByEmailFunc(ctx, email)
}

func (mock *userRepoMock) ExistsByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockExistsByEmail.RLock()
	calls = mock.calls.ExistsByEmail
	mock.lockExistsByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("userRepoMock.CountFunc: method is nil but userRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *userRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCount.RLock()
	calls = mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   domain.User
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, u domain.User) (domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, u)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   domain.User
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePassword(ctx context.Context, id int64, hash string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc: method is nil but userRepo.UpdatePassword was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   int64
		Hash string
	}{
		Ctx:  ctx,
		ID:   id,
		Hash: hash,
	}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, hash)
}

func (mock *userRepoMock) UpdatePasswordCalls() []struct {
	Ctx  context.Context
	ID   int64
	Hash string
} {
	var calls []struct {
		Ctx  context.Context
		ID   int64
		Hash string
	}
	mock.lockUpdatePassword.RLock()
	calls = mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
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

func (mock *userRepoMock) DeleteCalls() []struct {
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
