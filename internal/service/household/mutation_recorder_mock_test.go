package household

import (
	"sync"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var _ mutationRecorder = &mutationRecorderMock{}

type mutationRecorderMock struct {
	LedgerMutationFunc func(entity domain.EntityType, action domain.AuditAction)

	calls struct {
		LedgerMutation []struct {
			Entity domain.EntityType
			Action domain.AuditAction
		}
	}
	lockLedgerMutation sync.RWMutex
}

func (mock *mutationRecorderMock) LedgerMutation(entity domain.EntityType, action domain.AuditAction) {
	if mock.LedgerMutationFunc == nil {
		panic("mutationRecorderMock.LedgerMutationFunc: method is nil but mutationRecorder.LedgerMutation was just called")
	}
	callInfo := struct {
		Entity domain.EntityType
		Action domain.AuditAction
	}{
		Entity: entity,
		Action: action,
	}
	mock.lockLedgerMutation.Lock()
	mock.calls.LedgerMutation = append(mock.calls.LedgerMutation, callInfo)
	mock.lockLedgerMutation.Unlock()
	mock.LedgerMutationFunc(entity, action)
}

func (mock *mutationRecorderMock) LedgerMutationCalls() []struct {
	Entity domain.EntityType
	Action domain.AuditAction
} {
	var calls []struct {
		Entity domain.EntityType
		Action domain.AuditAction
	}
	mock.lockLedgerMutation.RLock()
	calls = mock.calls.LedgerMutation
	mock.lockLedgerMutation.RUnlock()
	return calls
}
