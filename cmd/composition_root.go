package cmd

import (
	"log/slog"

	httpadapter "cafeteria/internal/adapters/in/http"
	"cafeteria/internal/adapters/out/bcrypt"
	"cafeteria/internal/adapters/out/postgres"
	redisadapter "cafeteria/internal/adapters/out/redis"
	"cafeteria/internal/adapters/out/smtp"
	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/application/usecases/queries"
	"cafeteria/internal/core/domain/services"
	"cafeteria/internal/core/ports"
	"cafeteria/internal/jobs"
	"cafeteria/internal/pkg/session"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// CompositionRoot builds every collaborator of the service from the shared
// connections. Nothing is created lazily or cached globally.
type CompositionRoot struct {
	cfg         Config
	conns       *postgres.Connections
	logger      *slog.Logger
	uowFactory  *postgres.GormUnitOfWorkFactory
	policy      services.OrderAccessPolicy
	hasher      ports.PasswordHasher
	mailer      ports.Mailer
	sessions    *session.Manager
	revoker     session.Revoker
	revocations *redisadapter.RevocationStore
}

// NewCompositionRoot wires the service. rdb may be nil, in which case
// revoked sessions are kept in process memory.
func NewCompositionRoot(
	cfg Config,
	conns *postgres.Connections,
	rdb *redis.Client,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	sessions, err := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	var (
		revoker     session.Revoker = session.NewMemoryRevoker()
		revocations *redisadapter.RevocationStore
	)
	if rdb != nil {
		revocations = redisadapter.NewRevocationStore(rdb)
		revoker = revocations
	} else {
		logger.Warn("REDIS_URL is not set, revoked sessions are kept in memory")
	}

	var mailer ports.Mailer = smtp.NewLogMailer(logger)
	if cfg.SMTP.Host != "" {
		mailer = smtp.NewMailer(cfg.SMTP)
	}

	return &CompositionRoot{
		cfg:         cfg,
		conns:       conns,
		logger:      logger,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(conns.Gorm),
		policy:      services.NewOrderAccessPolicy(),
		hasher:      bcrypt.NewHasher(0),
		mailer:      mailer,
		sessions:    sessions,
		revoker:     revoker,
		revocations: revocations,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateAuthenticateUserCommandHandler() commands.AuthenticateUserCommandHandler {
	return commands.NewAuthenticateUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	return commands.NewUpdateProfileCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.conns.Gorm, c.policy)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.conns.Gorm, c.policy)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.conns.Gorm)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.conns.Gorm)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.conns.Gorm)
}

func (c *CompositionRoot) CreateGetUserStatsQueryHandler() queries.GetUserStatsQueryHandler {
	return queries.NewGetUserStatsQueryHandler(c.conns.Sqlx)
}

func (c *CompositionRoot) CreateGetAdminStatsQueryHandler() queries.GetAdminStatsQueryHandler {
	return queries.NewGetAdminStatsQueryHandler(c.conns.Sqlx, c.cfg.Location, nil)
}

// CreateHTTPHandler returns the echo instance serving the whole API.
func (c *CompositionRoot) CreateHTTPHandler() *echo.Echo {
	registerUser := c.CreateRegisterUserCommandHandler()
	authenticateUser := c.CreateAuthenticateUserCommandHandler()
	updateProfile := c.CreateUpdateProfileCommandHandler()
	updateUser := c.CreateUpdateUserCommandHandler()
	createProduct := c.CreateCreateProductCommandHandler()
	updateProduct := c.CreateUpdateProductCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	transition := c.CreateTransitionOrderStatusCommandHandler()

	healthChecks := map[string]httpadapter.HealthCheck{
		"postgres": c.conns.SQL.PingContext,
	}
	if c.revocations != nil {
		healthChecks["redis"] = c.revocations.Ping
	}

	server := httpadapter.NewServer(httpadapter.Options{
		Handlers: httpadapter.Handlers{
			RegisterUser:          &registerUser,
			AuthenticateUser:      &authenticateUser,
			UpdateProfile:         &updateProfile,
			UpdateUser:            &updateUser,
			CreateProduct:         &createProduct,
			UpdateProduct:         &updateProduct,
			CreateOrder:           &createOrder,
			TransitionOrderStatus: &transition,
			ListOrders:            c.CreateListOrdersQueryHandler(),
			GetOrder:              c.CreateGetOrderQueryHandler(),
			ListProducts:          c.CreateListProductsQueryHandler(),
			GetProduct:            c.CreateGetProductQueryHandler(),
			GetUser:               c.CreateGetUserQueryHandler(),
			GetUserStats:          c.CreateGetUserStatsQueryHandler(),
			GetAdminStats:         c.CreateGetAdminStatsQueryHandler(),
		},
		Sessions:     c.sessions,
		Revoker:      c.revoker,
		Metrics:      httpadapter.NewMetrics(),
		HealthChecks: healthChecks,
		CookieSecure: c.cfg.SessionCookieSecure,
		Logger:       c.logger,
	})

	return httpadapter.NewEcho(server, c.cfg.RequestTimeout)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetAdminStatsQueryHandler(), jobs.Config{
		ReportSchedule: c.cfg.ReportSchedule,
		Location:       c.cfg.Location,
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
