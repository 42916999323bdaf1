package http_test

import (
	"context"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/application/usecases/queries"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/domain/model/product"
	"cafeteria/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
)

type MockRegisterUserHandler struct{ mock.Mock }

func (m *MockRegisterUserHandler) Handle(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	if v := args.Get(0); v != nil {
		return v.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAuthenticateUserHandler struct{ mock.Mock }

func (m *MockAuthenticateUserHandler) Handle(ctx context.Context, cmd commands.AuthenticateUserCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	if v := args.Get(0); v != nil {
		return v.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUpdateProfileHandler struct{ mock.Mock }

func (m *MockUpdateProfileHandler) Handle(ctx context.Context, cmd commands.UpdateProfileCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	if v := args.Get(0); v != nil {
		return v.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUpdateUserHandler struct{ mock.Mock }

func (m *MockUpdateUserHandler) Handle(ctx context.Context, cmd commands.UpdateUserCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	if v := args.Get(0); v != nil {
		return v.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCreateProductHandler struct{ mock.Mock }

func (m *MockCreateProductHandler) Handle(ctx context.Context, cmd commands.CreateProductCommand) (*product.Product, error) {
	args := m.Called(ctx, cmd)
	if v := args.Get(0); v != nil {
		return v.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUpdateProductHandler struct{ mock.Mock }

func (m *MockUpdateProductHandler) Handle(ctx context.Context, cmd commands.UpdateProductCommand) (*product.Product, error) {
	args := m.Called(ctx, cmd)
	if v := args.Get(0); v != nil {
		return v.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if v := args.Get(0); v != nil {
		return v.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTransitionOrderStatusHandler struct{ mock.Mock }

func (m *MockTransitionOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.TransitionOrderStatusCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if v := args.Get(0); v != nil {
		return v.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]queries.OrderView), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockListProductsHandler struct{ mock.Mock }

func (m *MockListProductsHandler) Handle(ctx context.Context, query queries.ListProductsQuery) ([]queries.ProductView, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]queries.ProductView), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockGetProductHandler struct{ mock.Mock }

func (m *MockGetProductHandler) Handle(ctx context.Context, productID int64) (queries.ProductView, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(queries.ProductView), args.Error(1)
}

type MockGetUserHandler struct{ mock.Mock }

func (m *MockGetUserHandler) Handle(ctx context.Context, userID int64) (queries.UserView, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(queries.UserView), args.Error(1)
}

type MockGetUserStatsHandler struct{ mock.Mock }

func (m *MockGetUserStatsHandler) Handle(ctx context.Context, actor user.Actor) (queries.UserStats, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(queries.UserStats), args.Error(1)
}

type MockGetAdminStatsHandler struct{ mock.Mock }

func (m *MockGetAdminStatsHandler) Handle(ctx context.Context) (queries.AdminStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(queries.AdminStats), args.Error(1)
}
