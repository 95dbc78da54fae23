package submission

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/poetic-threads/internal/domain"
	"github.com/heartmarshall/poetic-threads/internal/service/quota"
)

var _ stanzaRepo = &stanzaRepoMock{}

type stanzaRepoMock struct {
	CreateFunc func(ctx context.Context, s domain.Stanza) (*domain.Stanza, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   domain.Stanza
		}
	}
	lockCreate sync.RWMutex
}

func (mock *stanzaRepoMock) Create(ctx context.Context, s domain.Stanza) (*domain.Stanza, error) {
	if mock.CreateFunc == nil {
		panic("stanzaRepoMock.CreateFunc: method is nil but stanzaRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Stanza
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *stanzaRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.Stanza
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ themeRepo = &themeRepoMock{}

type themeRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Theme, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *themeRepoMock) GetByID(ctx context.Context, id int64) (*domain.Theme, error) {
	if mock.GetByIDFunc == nil {
		panic("themeRepoMock.GetByIDFunc: method is nil but themeRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *themeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ quotaLedger = &quotaLedgerMock{}

type quotaLedgerMock struct {
	CheckAndReserveFunc func(ctx context.Context, userID int64, themeID int64, now time.Time) (quota.Decision, error)
	CommitFunc          func(ctx context.Context, userID int64, themeID int64, now time.Time) error

	calls struct {
		CheckAndReserve []struct {
			Ctx     context.Context
			UserID  int64
			ThemeID int64
			Now     time.Time
		}
		Commit []struct {
			Ctx     context.Context
			UserID  int64
			ThemeID int64
			Now     time.Time
		}
	}
	lockCheckAndReserve sync.RWMutex
	lockCommit          sync.RWMutex
}

func (mock *quotaLedgerMock) CheckAndReserve(ctx context.Context, userID int64, themeID int64, now time.Time) (quota.Decision, error) {
	if mock.CheckAndReserveFunc == nil {
		panic("quotaLedgerMock.CheckAndReserveFunc: method is nil but quotaLedger.CheckAndReserve was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  int64
		ThemeID int64
		Now     time.Time
	}{
		Ctx:     ctx,
		UserID:  userID,
		ThemeID: themeID,
		Now:     now,
	}
	mock.lockCheckAndReserve.Lock()
	mock.calls.CheckAndReserve = append(mock.calls.CheckAndReserve, callInfo)
	mock.lockCheckAndReserve.Unlock()
	return mock.CheckAndReserveFunc(ctx, userID, themeID, now)
}

func (mock *quotaLedgerMock) CheckAndReserveCalls() []struct {
	Ctx     context.Context
	UserID  int64
	ThemeID int64
	Now     time.Time
} {
	mock.lockCheckAndReserve.RLock()
	calls := mock.calls.CheckAndReserve
	mock.lockCheckAndReserve.RUnlock()
	return calls
}

func (mock *quotaLedgerMock) Commit(ctx context.Context, userID int64, themeID int64, now time.Time) error {
	if mock.CommitFunc == nil {
		panic("quotaLedgerMock.CommitFunc: method is nil but quotaLedger.Commit was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  int64
		ThemeID int64
		Now     time.Time
	}{
		Ctx:     ctx,
		UserID:  userID,
		ThemeID: themeID,
		Now:     now,
	}
	mock.lockCommit.Lock()
	mock.calls.Commit = append(mock.calls.Commit, callInfo)
	mock.lockCommit.Unlock()
	return mock.CommitFunc(ctx, userID, themeID, now)
}

func (mock *quotaLedgerMock) CommitCalls() []struct {
	Ctx     context.Context
	UserID  int64
	ThemeID int64
	Now     time.Time
} {
	mock.lockCommit.RLock()
	calls := mock.calls.Commit
	mock.lockCommit.RUnlock()
	return calls
}

var _ pageAssigner = &pageAssignerMock{}

type pageAssignerMock struct {
	AssignPageFunc func(ctx context.Context, themeID int64) (int, error)

	calls struct {
		AssignPage []struct {
			Ctx     context.Context
			ThemeID int64
		}
	}
	lockAssignPage sync.RWMutex
}

func (mock *pageAssignerMock) AssignPage(ctx context.Context, themeID int64) (int, error) {
	if mock.AssignPageFunc == nil {
		panic("pageAssignerMock.AssignPageFunc: method is nil but pageAssigner.AssignPage was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ThemeID int64
	}{
		Ctx:     ctx,
		ThemeID: themeID,
	}
	mock.lockAssignPage.Lock()
	mock.calls.AssignPage = append(mock.calls.AssignPage, callInfo)
	mock.lockAssignPage.Unlock()
	return mock.AssignPageFunc(ctx, themeID)
}

func (mock *pageAssignerMock) AssignPageCalls() []struct {
	Ctx     context.Context
	ThemeID int64
} {
	mock.lockAssignPage.RLock()
	calls := mock.calls.AssignPage
	mock.lockAssignPage.RUnlock()
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
