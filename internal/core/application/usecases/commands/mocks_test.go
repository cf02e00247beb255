package commands_test

import (
	"context"

	"routing/internal/core/application/usecases/commands"
	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockActionRepository struct{ mock.Mock }

func (m *MockActionRepository) Add(ctx context.Context, a *action.Action) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActionRepository) Get(ctx context.Context, id kernel.UUID) (*action.Action, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*action.Action), args.Error(1)
}

func (m *MockActionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockActionRepository) ListByRoute(ctx context.Context, r route.Route) ([]*action.Action, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*action.Action), args.Error(1)
}

func (m *MockActionRepository) FindByRouteAndLocationKey(
	ctx context.Context,
	r route.Route,
	coordinate kernel.Coordinate,
) (*action.Action, error) {
	args := m.Called(ctx, r, coordinate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*action.Action), args.Error(1)
}

func (m *MockActionRepository) FindByRouteAndLocationGroupName(
	ctx context.Context,
	r route.Route,
	groupName string,
) (*action.Action, error) {
	args := m.Called(ctx, r, groupName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*action.Action), args.Error(1)
}

type MockActionUoW struct{ mock.Mock }

func (m *MockActionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockActionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockActionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockActionUoW) ActionRepository() ports.ActionRepository {
	args := m.Called()
	return args.Get(0).(ports.ActionRepository)
}

type MockActionUoWFactory struct{ mock.Mock }

func (m *MockActionUoWFactory) Create() commands.ActionUoW {
	args := m.Called()
	return args.Get(0).(commands.ActionUoW)
}
