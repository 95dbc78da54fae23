package quota

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/poetic-threads/internal/domain"
)

var _ limitRepo = &limitRepoMock{}

type limitRepoMock struct {
	LockOrCreateFunc     func(ctx context.Context, userID int64) (*domain.DailyLimit, error)
	GetFunc              func(ctx context.Context, userID int64) (*domain.DailyLimit, error)
	ResetFunc            func(ctx context.Context, userID int64) error
	RecordSubmissionFunc func(ctx context.Context, userID int64, themeID int64, at time.Time) error

	calls struct {
		LockOrCreate []struct {
			Ctx    context.Context
			UserID int64
		}
		Get []struct {
			Ctx    context.Context
			UserID int64
		}
		Reset []struct {
			Ctx    context.Context
			UserID int64
		}
		RecordSubmission []struct {
			Ctx     context.Context
			UserID  int64
			ThemeID int64
			At      time.Time
		}
	}
	lockLockOrCreate     sync.RWMutex
	lockGet              sync.RWMutex
	lockReset            sync.RWMutex
	lockRecordSubmission sync.RWMutex
}

func (mock *limitRepoMock) LockOrCreate(ctx context.Context, userID int64) (*domain.DailyLimit, error) {
	if mock.LockOrCreateFunc == nil {
		panic("limitRepoMock.LockOrCreateFunc: method is nil but limitRepo.LockOrCreate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockLockOrCreate.Lock()
	mock.calls.LockOrCreate = append(mock.calls.LockOrCreate, callInfo)
	mock.lockLockOrCreate.Unlock()
	return mock.LockOrCreateFunc(ctx, userID)
}

func (mock *limitRepoMock) LockOrCreateCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockLockOrCreate.RLock()
	calls := mock.calls.LockOrCreate
	mock.lockLockOrCreate.RUnlock()
	return calls
}

func (mock *limitRepoMock) Get(ctx context.Context, userID int64) (*domain.DailyLimit, error) {
	if mock.GetFunc == nil {
		panic("limitRepoMock.GetFunc: method is nil but limitRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *limitRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *limitRepoMock) Reset(ctx context.Context, userID int64) error {
	if mock.ResetFunc == nil {
		panic("limitRepoMock.ResetFunc: method is nil but limitRepo.Reset was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockReset.Lock()
	mock.calls.Reset = append(mock.calls.Reset, callInfo)
	mock.lockReset.Unlock()
	return mock.ResetFunc(ctx, userID)
}

func (mock *limitRepoMock) ResetCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockReset.RLock()
	calls := mock.calls.Reset
	mock.lockReset.RUnlock()
	return calls
}

func (mock *limitRepoMock) RecordSubmission(ctx context.Context, userID int64, themeID int64, at time.Time) error {
	if mock.RecordSubmissionFunc == nil {
		panic("limitRepoMock.RecordSubmissionFunc: method is nil but limitRepo.RecordSubmission was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  int64
		ThemeID int64
		At      time.Time
	}{
		Ctx:     ctx,
		UserID:  userID,
		ThemeID: themeID,
		At:      at,
	}
	mock.lockRecordSubmission.Lock()
	mock.calls.RecordSubmission = append(mock.calls.RecordSubmission, callInfo)
	mock.lockRecordSubmission.Unlock()
	return mock.RecordSubmissionFunc(ctx, userID, themeID, at)
}

func (mock *limitRepoMock) RecordSubmissionCalls() []struct {
	Ctx     context.Context
	UserID  int64
	ThemeID int64
	At      time.Time
} {
	mock.lockRecordSubmission.RLock()
	calls := mock.calls.RecordSubmission
	mock.lockRecordSubmission.RUnlock()
	return calls
}
