package moderation

import (
	"context"
	"sync"

	"github.com/heartmarshall/poetic-threads/internal/domain"
)

var _ stanzaRepo = &stanzaRepoMock{}

type stanzaRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id int64) (*domain.Stanza, error)
	UpdateStatusFunc     func(ctx context.Context, id int64, status domain.StanzaStatus) error
	ListPendingFunc      func(ctx context.Context) ([]domain.PendingStanza, error)
	CountByStatusFunc    func(ctx context.Context, status domain.StanzaStatus) (int, error)

	calls struct {
		GetByIDForUpdate []struct {
			Ctx context.Context
			Id  int64
		}
		UpdateStatus []struct {
			Ctx    context.Context
			Id     int64
			Status domain.StanzaStatus
		}
		ListPending []struct {
			Ctx context.Context
		}
		CountByStatus []struct {
			Ctx    context.Context
			Status domain.StanzaStatus
		}
	}
	lockGetByIDForUpdate sync.RWMutex
	lockUpdateStatus     sync.RWMutex
	lockListPending      sync.RWMutex
	lockCountByStatus    sync.RWMutex
}

func (mock *stanzaRepoMock) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Stanza, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("stanzaRepoMock.GetByIDForUpdateFunc: method is nil but stanzaRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *stanzaRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *stanzaRepoMock) UpdateStatus(ctx context.Context, id int64, status domain.StanzaStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("stanzaRepoMock.UpdateStatusFunc: method is nil but stanzaRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     int64
		Status domain.StanzaStatus
	}{
		Ctx:    ctx,
		Id:     id,
		Status: status,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *stanzaRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	Id     int64
	Status domain.StanzaStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *stanzaRepoMock) ListPending(ctx context.Context) ([]domain.PendingStanza, error) {
	if mock.ListPendingFunc == nil {
		panic("stanzaRepoMock.ListPendingFunc: method is nil but stanzaRepo.ListPending was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, callInfo)
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx)
}

func (mock *stanzaRepoMock) ListPendingCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPending.RLock()
	calls := mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}

func (mock *stanzaRepoMock) CountByStatus(ctx context.Context, status domain.StanzaStatus) (int, error) {
	if mock.CountByStatusFunc == nil {
		panic("stanzaRepoMock.CountByStatusFunc: method is nil but stanzaRepo.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.StanzaStatus
	}{
		Ctx:    ctx,
		Status: status,
	}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx, status)
}

func (mock *stanzaRepoMock) CountByStatusCalls() []struct {
	Ctx    context.Context
	Status domain.StanzaStatus
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetRoleFunc func(ctx context.Context, id int64) (domain.UserRole, error)
	CountFunc   func(ctx context.Context) (int, error)

	calls struct {
		GetRole []struct {
			Ctx context.Context
			Id  int64
		}
		Count []struct {
			Ctx context.Context
		}
	}
	lockGetRole sync.RWMutex
	lockCount   sync.RWMutex
}

func (mock *userRepoMock) GetRole(ctx context.Context, id int64) (domain.UserRole, error) {
	if mock.GetRoleFunc == nil {
		panic("userRepoMock.GetRoleFunc: method is nil but userRepo.GetRole was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetRole.Lock()
	mock.calls.GetRole = append(mock.calls.GetRole, callInfo)
	mock.lockGetRole.Unlock()
	return mock.GetRoleFunc(ctx, id)
}

func (mock *userRepoMock) GetRoleCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetRole.RLock()
	calls := mock.calls.GetRole
	mock.lockGetRole.RUnlock()
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
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

var _ themeCounter = &themeCounterMock{}

type themeCounterMock struct {
	CountFunc func(ctx context.Context) (int, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
	}
	lockCount sync.RWMutex
}

func (mock *themeCounterMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("themeCounterMock.CountFunc: method is nil but themeCounter.Count was just called")
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

func (mock *themeCounterMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

var _ auditLog = &auditLogMock{}

type auditLogMock struct {
	LogFunc          func(ctx context.Context, rec domain.AuditRecord) error
	ListByStanzaFunc func(ctx context.Context, stanzaID int64) ([]domain.AuditRecord, error)

	calls struct {
		Log []struct {
			Ctx context.Context
			Rec domain.AuditRecord
		}
		ListByStanza []struct {
			Ctx      context.Context
			StanzaID int64
		}
	}
	lockLog          sync.RWMutex
	lockListByStanza sync.RWMutex
}

func (mock *auditLogMock) Log(ctx context.Context, rec domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditLogMock.LogFunc: method is nil but auditLog.Log was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.AuditRecord
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, rec)
}

func (mock *auditLogMock) LogCalls() []struct {
	Ctx context.Context
	Rec domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

func (mock *auditLogMock) ListByStanza(ctx context.Context, stanzaID int64) ([]domain.AuditRecord, error) {
	if mock.ListByStanzaFunc == nil {
		panic("auditLogMock.ListByStanzaFunc: method is nil but auditLog.ListByStanza was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		StanzaID int64
	}{
		Ctx:      ctx,
		StanzaID: stanzaID,
	}
	mock.lockListByStanza.Lock()
	mock.calls.ListByStanza = append(mock.calls.ListByStanza, callInfo)
	mock.lockListByStanza.Unlock()
	return mock.ListByStanzaFunc(ctx, stanzaID)
}

func (mock *auditLogMock) ListByStanzaCalls() []struct {
	Ctx      context.Context
	StanzaID int64
} {
	mock.lockListByStanza.RLock()
	calls := mock.calls.ListByStanza
	mock.lockListByStanza.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
