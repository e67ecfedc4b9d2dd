package payment

import (
	"context"
	"sync"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyInTxFunc        func(ctx context.Context, ev domain.Notification) (*domain.Notification, error)
	NotifyAfterCommitFunc func(ctx context.Context, ev domain.Notification, stored *domain.Notification)

	calls struct {
		NotifyInTx []struct {
			Ctx context.Context
			Ev  domain.Notification
		}
		NotifyAfterCommit []struct {
			Ctx    context.Context
			Ev     domain.Notification
			Stored *domain.Notification
		}
	}
	lockNotifyInTx        sync.RWMutex
	lockNotifyAfterCommit sync.RWMutex
}

func (mock *notifierMock) NotifyInTx(ctx context.Context, ev domain.Notification) (*domain.Notification, error) {
	if mock.NotifyInTxFunc == nil {
		panic("notifierMock.NotifyInTxFunc: method is nil but notifier.NotifyInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.Notification
	}{
		Ctx: ctx,
		Ev:  ev,
	}
	mock.lockNotifyInTx.Lock()
	mock.calls.NotifyInTx = append(mock.calls.NotifyInTx, callInfo)
	mock.lockNotifyInTx.Unlock()
	return mock.NotifyInTxFunc(ctx, ev)
}

func (mock *notifierMock) NotifyInTxCalls() []struct {
	Ctx context.Context
	Ev  domain.Notification
} {
	var calls []struct {
		Ctx context.Context
		Ev  domain.Notification
	}
	mock.lockNotifyInTx.RLock()
	calls = mock.calls.NotifyInTx
	mock.lockNotifyInTx.RUnlock()
	return calls
}

func (mock *notifierMock) NotifyAfterCommit(ctx context.Context, ev domain.Notification, stored *domain.Notification) {
	if mock.NotifyAfterCommitFunc == nil {
		panic("notifierMock.NotifyAfterCommitFunc: method is nil but notifier.NotifyAfterCommit was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Ev     domain.Notification
		Stored *domain.Notification
	}{
		Ctx:    ctx,
		Ev:     ev,
		Stored: stored,
	}
	mock.lockNotifyAfterCommit.Lock()
	mock.calls.NotifyAfterCommit = append(mock.calls.NotifyAfterCommit, callInfo)
	mock.lockNotifyAfterCommit.Unlock()
	mock.NotifyAfterCommitFunc(ctx, ev, stored)
}

func (mock *notifierMock) NotifyAfterCommitCalls() []struct {
	Ctx    context.Context
	Ev     domain.Notification
	Stored *domain.Notification
} {
	var calls []struct {
		Ctx    context.Context
		Ev     domain.Notification
		Stored *domain.Notification
	}
	mock.lockNotifyAfterCommit.RLock()
	calls = mock.calls.NotifyAfterCommit
	mock.lockNotifyAfterCommit.RUnlock()
	return calls
}
