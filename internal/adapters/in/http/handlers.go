package http

import (
	"context"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/application/usecases/queries"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/domain/model/product"
	"cafeteria/internal/core/domain/model/user"
)

// Use cases the server depends on. Each is satisfied by the matching
// handler in commands or queries.
type (
	RegisterUserHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error)
	}

	AuthenticateUserHandler interface {
		Handle(ctx context.Context, cmd commands.AuthenticateUserCommand) (*user.User, error)
	}

	UpdateProfileHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateProfileCommand) (*user.User, error)
	}

	UpdateUserHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateUserCommand) (*user.User, error)
	}

	CreateProductHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) (*product.Product, error)
	}

	UpdateProductHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateProductCommand) (*product.Product, error)
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	TransitionOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderStatusCommand) (*order.Order, error)
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}

	ListProductsHandler interface {
		Handle(ctx context.Context, query queries.ListProductsQuery) ([]queries.ProductView, error)
	}

	GetProductHandler interface {
		Handle(ctx context.Context, productID int64) (queries.ProductView, error)
	}

	GetUserHandler interface {
		Handle(ctx context.Context, userID int64) (queries.UserView, error)
	}

	GetUserStatsHandler interface {
		Handle(ctx context.Context, actor user.Actor) (queries.UserStats, error)
	}

	GetAdminStatsHandler interface {
		Handle(ctx context.Context) (queries.AdminStats, error)
	}
)

// Handlers groups every use case the HTTP boundary dispatches to.
type Handlers struct {
	RegisterUser     RegisterUserHandler
	AuthenticateUser AuthenticateUserHandler
	UpdateProfile    UpdateProfileHandler
	UpdateUser       UpdateUserHandler

	CreateProduct CreateProductHandler
	UpdateProduct UpdateProductHandler

	CreateOrder           CreateOrderHandler
	TransitionOrderStatus TransitionOrderStatusHandler

	ListOrders    ListOrdersHandler
	GetOrder      GetOrderHandler
	ListProducts  ListProductsHandler
	GetProduct    GetProductHandler
	GetUser       GetUserHandler
	GetUserStats  GetUserStatsHandler
	GetAdminStats GetAdminStatsHandler
}
