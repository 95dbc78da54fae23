package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/poetic-threads/internal/domain"
	"github.com/heartmarshall/poetic-threads/internal/service/moderation"
	"github.com/heartmarshall/poetic-threads/internal/service/notification"
	"github.com/heartmarshall/poetic-threads/internal/service/quota"
	"github.com/heartmarshall/poetic-threads/internal/service/submission"
	"github.com/heartmarshall/poetic-threads/internal/service/theme"
)

var _ themeService = &themeServiceMock{}

type themeServiceMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Theme, error)
	CreateFunc func(ctx context.Context, adminID int64, input theme.CreateInput) (*domain.Theme, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx     context.Context
			AdminID int64
			Input   theme.CreateInput
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
}

func (mock *themeServiceMock) List(ctx context.Context) ([]domain.Theme, error) {
	if mock.ListFunc == nil {
		panic("themeServiceMock.ListFunc: method is nil but themeService.List was just called")
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

func (mock *themeServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *themeServiceMock) Create(ctx context.Context, adminID int64, input theme.CreateInput) (*domain.Theme, error) {
	if mock.CreateFunc == nil {
		panic("themeServiceMock.CreateFunc: method is nil but themeService.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AdminID int64
		Input   theme.CreateInput
	}{
		Ctx:     ctx,
		AdminID: adminID,
		Input:   input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, adminID, input)
}

func (mock *themeServiceMock) CreateCalls() []struct {
	Ctx     context.Context
	AdminID int64
	Input   theme.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ submitter = &submitterMock{}

type submitterMock struct {
	SubmitFunc func(ctx context.Context, input submission.SubmitInput) (*domain.Stanza, error)

	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input submission.SubmitInput
		}
	}
	lockSubmit sync.RWMutex
}

func (mock *submitterMock) Submit(ctx context.Context, input submission.SubmitInput) (*domain.Stanza, error) {
	if mock.SubmitFunc == nil {
		panic("submitterMock.SubmitFunc: method is nil but submitter.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input submission.SubmitInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *submitterMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input submission.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

var _ stanzaReader = &stanzaReaderMock{}

type stanzaReaderMock struct {
	ListApprovedFunc func(ctx context.Context, themeID int64, page int, viewerID int64) (*domain.StanzaPage, error)
	LastApprovedFunc func(ctx context.Context, themeID int64, n int) ([]domain.Stanza, error)
	TotalsFunc       func(ctx context.Context) (*domain.Totals, error)

	calls struct {
		ListApproved []struct {
			Ctx      context.Context
			ThemeID  int64
			Page     int
			ViewerID int64
		}
		LastApproved []struct {
			Ctx     context.Context
			ThemeID int64
			N       int
		}
		Totals []struct {
			Ctx context.Context
		}
	}
	lockListApproved sync.RWMutex
	lockLastApproved sync.RWMutex
	lockTotals       sync.RWMutex
}

func (mock *stanzaReaderMock) ListApproved(ctx context.Context, themeID int64, page int, viewerID int64) (*domain.StanzaPage, error) {
	if mock.ListApprovedFunc == nil {
		panic("stanzaReaderMock.ListApprovedFunc: method is nil but stanzaReader.ListApproved was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ThemeID  int64
		Page     int
		ViewerID int64
	}{
		Ctx:      ctx,
		ThemeID:  themeID,
		Page:     page,
		ViewerID: viewerID,
	}
	mock.lockListApproved.Lock()
	mock.calls.ListApproved = append(mock.calls.ListApproved, callInfo)
	mock.lockListApproved.Unlock()
	return mock.ListApprovedFunc(ctx, themeID, page, viewerID)
}

func (mock *stanzaReaderMock) ListApprovedCalls() []struct {
	Ctx      context.Context
	ThemeID  int64
	Page     int
	ViewerID int64
} {
	mock.lockListApproved.RLock()
	calls := mock.calls.ListApproved
	mock.lockListApproved.RUnlock()
	return calls
}

func (mock *stanzaReaderMock) LastApproved(ctx context.Context, themeID int64, n int) ([]domain.Stanza, error) {
	if mock.LastApprovedFunc == nil {
		panic("stanzaReaderMock.LastApprovedFunc: method is nil but stanzaReader.LastApproved was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ThemeID int64
		N       int
	}{
		Ctx:     ctx,
		ThemeID: themeID,
		N:       n,
	}
	mock.lockLastApproved.Lock()
	mock.calls.LastApproved = append(mock.calls.LastApproved, callInfo)
	mock.lockLastApproved.Unlock()
	return mock.LastApprovedFunc(ctx, themeID, n)
}

func (mock *stanzaReaderMock) LastApprovedCalls() []struct {
	Ctx     context.Context
	ThemeID int64
	N       int
} {
	mock.lockLastApproved.RLock()
	calls := mock.calls.LastApproved
	mock.lockLastApproved.RUnlock()
	return calls
}

func (mock *stanzaReaderMock) Totals(ctx context.Context) (*domain.Totals, error) {
	if mock.TotalsFunc == nil {
		panic("stanzaReaderMock.TotalsFunc: method is nil but stanzaReader.Totals was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockTotals.Lock()
	mock.calls.Totals = append(mock.calls.Totals, callInfo)
	mock.lockTotals.Unlock()
	return mock.TotalsFunc(ctx)
}

func (mock *stanzaReaderMock) TotalsCalls() []struct {
	Ctx context.Context
} {
	mock.lockTotals.RLock()
	calls := mock.calls.Totals
	mock.lockTotals.RUnlock()
	return calls
}

var _ quotaStatus = &quotaStatusMock{}

type quotaStatusMock struct {
	StatusFunc func(ctx context.Context, userID int64) (*quota.Status, error)

	calls struct {
		Status []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lockStatus sync.RWMutex
}

func (mock *quotaStatusMock) Status(ctx context.Context, userID int64) (*quota.Status, error) {
	if mock.StatusFunc == nil {
		panic("quotaStatusMock.StatusFunc: method is nil but quotaStatus.Status was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockStatus.Lock()
	mock.calls.Status = append(mock.calls.Status, callInfo)
	mock.lockStatus.Unlock()
	return mock.StatusFunc(ctx, userID)
}

func (mock *quotaStatusMock) StatusCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockStatus.RLock()
	calls := mock.calls.Status
	mock.lockStatus.RUnlock()
	return calls
}

var _ approvalCounter = &approvalCounterMock{}

type approvalCounterMock struct {
	UnreadApprovedCountFunc func(ctx context.Context, userID int64, watermark int) (notification.Counts, error)

	calls struct {
		UnreadApprovedCount []struct {
			Ctx       context.Context
			UserID    int64
			Watermark int
		}
	}
	lockUnreadApprovedCount sync.RWMutex
}

func (mock *approvalCounterMock) UnreadApprovedCount(ctx context.Context, userID int64, watermark int) (notification.Counts, error) {
	if mock.UnreadApprovedCountFunc == nil {
		panic("approvalCounterMock.UnreadApprovedCountFunc: method is nil but approvalCounter.UnreadApprovedCount was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    int64
		Watermark int
	}{
		Ctx:       ctx,
		UserID:    userID,
		Watermark: watermark,
	}
	mock.lockUnreadApprovedCount.Lock()
	mock.calls.UnreadApprovedCount = append(mock.calls.UnreadApprovedCount, callInfo)
	mock.lockUnreadApprovedCount.Unlock()
	return mock.UnreadApprovedCountFunc(ctx, userID, watermark)
}

func (mock *approvalCounterMock) UnreadApprovedCountCalls() []struct {
	Ctx       context.Context
	UserID    int64
	Watermark int
} {
	mock.lockUnreadApprovedCount.RLock()
	calls := mock.calls.UnreadApprovedCount
	mock.lockUnreadApprovedCount.RUnlock()
	return calls
}

var _ moderationService = &moderationServiceMock{}

type moderationServiceMock struct {
	ListPendingFunc func(ctx context.Context, adminID int64) ([]domain.PendingStanza, error)
	DecideFunc      func(ctx context.Context, input moderation.DecideInput) (*domain.Stanza, error)
	StatsFunc       func(ctx context.Context, adminID int64) (*domain.ModerationStats, error)
	HistoryFunc     func(ctx context.Context, adminID int64, stanzaID int64) ([]domain.AuditRecord, error)

	calls struct {
		ListPending []struct {
			Ctx     context.Context
			AdminID int64
		}
		Decide []struct {
			Ctx   context.Context
			Input moderation.DecideInput
		}
		Stats []struct {
			Ctx     context.Context
			AdminID int64
		}
		History []struct {
			Ctx      context.Context
			AdminID  int64
			StanzaID int64
		}
	}
	lockListPending sync.RWMutex
	lockDecide      sync.RWMutex
	lockStats       sync.RWMutex
	lockHistory     sync.RWMutex
}

func (mock *moderationServiceMock) ListPending(ctx context.Context, adminID int64) ([]domain.PendingStanza, error) {
	if mock.ListPendingFunc == nil {
		panic("moderationServiceMock.ListPendingFunc: method is nil but moderationService.ListPending was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AdminID int64
	}{
		Ctx:     ctx,
		AdminID: adminID,
	}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, callInfo)
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx, adminID)
}

func (mock *moderationServiceMock) ListPendingCalls() []struct {
	Ctx     context.Context
	AdminID int64
} {
	mock.lockListPending.RLock()
	calls := mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}

func (mock *moderationServiceMock) Decide(ctx context.Context, input moderation.DecideInput) (*domain.Stanza, error) {
	if mock.DecideFunc == nil {
		panic("moderationServiceMock.DecideFunc: method is nil but moderationService.Decide was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.DecideInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDecide.Lock()
	mock.calls.Decide = append(mock.calls.Decide, callInfo)
	mock.lockDecide.Unlock()
	return mock.DecideFunc(ctx, input)
}

func (mock *moderationServiceMock) DecideCalls() []struct {
	Ctx   context.Context
	Input moderation.DecideInput
} {
	mock.lockDecide.RLock()
	calls := mock.calls.Decide
	mock.lockDecide.RUnlock()
	return calls
}

func (mock *moderationServiceMock) Stats(ctx context.Context, adminID int64) (*domain.ModerationStats, error) {
	if mock.StatsFunc == nil {
		panic("moderationServiceMock.StatsFunc: method is nil but moderationService.Stats was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AdminID int64
	}{
		Ctx:     ctx,
		AdminID: adminID,
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, adminID)
}

func (mock *moderationServiceMock) StatsCalls() []struct {
	Ctx     context.Context
	AdminID int64
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *moderationServiceMock) History(ctx context.Context, adminID int64, stanzaID int64) ([]domain.AuditRecord, error) {
	if mock.HistoryFunc == nil {
		panic("moderationServiceMock.HistoryFunc: method is nil but moderationService.History was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AdminID  int64
		StanzaID int64
	}{
		Ctx:      ctx,
		AdminID:  adminID,
		StanzaID: stanzaID,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, adminID, stanzaID)
}

func (mock *moderationServiceMock) HistoryCalls() []struct {
	Ctx      context.Context
	AdminID  int64
	StanzaID int64
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
