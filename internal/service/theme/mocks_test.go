package theme

import (
	"context"
	"sync"

	"github.com/heartmarshall/poetic-threads/internal/domain"
)

var _ themeRepo = &themeRepoMock{}

type themeRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.Theme, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Theme, error)
	CreateFunc  func(ctx context.Context, t domain.Theme) (*domain.Theme, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		Create []struct {
			Ctx context.Context
			T   domain.Theme
		}
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
}

func (mock *themeRepoMock) List(ctx context.Context) ([]domain.Theme, error) {
	if mock.ListFunc == nil {
		panic("themeRepoMock.ListFunc: method is nil but themeRepo.List was just called")
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

func (mock *themeRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
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

func (mock *themeRepoMock) Create(ctx context.Context, t domain.Theme) (*domain.Theme, error) {
	if mock.CreateFunc == nil {
		panic("themeRepoMock.CreateFunc: method is nil but themeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.Theme
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *themeRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   domain.Theme
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ roleResolver = &roleResolverMock{}

type roleResolverMock struct {
	GetRoleFunc func(ctx context.Context, id int64) (domain.UserRole, error)

	calls struct {
		GetRole []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetRole sync.RWMutex
}

func (mock *roleResolverMock) GetRole(ctx context.Context, id int64) (domain.UserRole, error) {
	if mock.GetRoleFunc == nil {
		panic("roleResolverMock.GetRoleFunc: method is nil but roleResolver.GetRole was just called")
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

func (mock *roleResolverMock) GetRoleCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetRole.RLock()
	calls := mock.calls.GetRole
	mock.lockGetRole.RUnlock()
	return calls
}
