package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"cafeteria/internal/core/application/usecases/commands"
	"cafeteria/internal/core/application/usecases/queries"
	"cafeteria/internal/core/domain/model/kernel"
	"cafeteria/internal/core/domain/model/order"
	"cafeteria/internal/core/domain/model/product"
	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/generated/servers"
	"cafeteria/internal/pkg/errs"
	"cafeteria/internal/pkg/session"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck reports whether a backing service is reachable.
type HealthCheck func(ctx context.Context) error

// Options configures a Server.
type Options struct {
	Handlers     Handlers
	Sessions     *session.Manager
	Revoker      session.Revoker
	Metrics      *Metrics
	HealthChecks map[string]HealthCheck
	CookieSecure bool
	Logger       *slog.Logger
}

// Server implements servers.ServerInterface. It translates requests into
// commands and queries and renders their results. Errors are returned to
// echo and rendered by NewHTTPErrorHandler.
type Server struct {
	handlers     Handlers
	sessions     *session.Manager
	revoker      session.Revoker
	metrics      *Metrics
	healthChecks map[string]HealthCheck
	cookieSecure bool
	baseLogger   *slog.Logger
	logger       *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	return &Server{
		handlers:     opts.Handlers,
		sessions:     opts.Sessions,
		revoker:      opts.Revoker,
		metrics:      metrics,
		healthChecks: opts.HealthChecks,
		cookieSecure: opts.CookieSecure,
		baseLogger:   logger,
		logger:       logger.With("component", "HTTPServer"),
	}
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var body servers.RegisterRequest
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	role := user.Student
	if body.Role != nil {
		parsed, err := user.ParseRole(string(*body.Role))
		if err != nil {
			return err
		}
		role = parsed
	}

	cmd, err := commands.NewRegisterUserCommand(body.Name, body.Email, body.Password, role)
	if err != nil {
		return err
	}

	u, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toUser(u))
}

// Login handles POST /api/v1/auth/login. The token is returned in the body
// and set as an http-only cookie.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginRequest
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAuthenticateUserCommand(body.Email, body.Password)
	if err != nil {
		return err
	}

	u, err := s.handlers.AuthenticateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	token, err := s.sessions.Issue(u.Actor())
	if err != nil {
		return err
	}

	ctx.SetCookie(s.sessionCookie(token))
	return ctx.JSON(http.StatusOK, servers.LoginResponse{
		ExpiresAt: token.ExpiresAt,
		Token:     token.Raw,
		User:      toUser(u),
	})
}

// Logout handles POST /api/v1/auth/logout.
func (s *Server) Logout(ctx echo.Context) error {
	sess, err := requireSession(ctx)
	if err != nil {
		return err
	}

	if err = s.revoker.Revoke(ctx.Request().Context(), sess.token.ID, sess.token.ExpiresAt); err != nil {
		return err
	}

	ctx.SetCookie(s.expiredSessionCookie())
	return ctx.NoContent(http.StatusNoContent)
}

// GetCurrentUser handles GET /api/v1/auth/me.
func (s *Server) GetCurrentUser(ctx echo.Context) error {
	sess, err := requireSession(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toUserView(sess.user))
}

// UpdateCurrentUser handles PATCH /api/v1/users/me.
func (s *Server) UpdateCurrentUser(ctx echo.Context) error {
	sess, err := requireSession(ctx)
	if err != nil {
		return err
	}

	var body servers.UpdateProfileRequest
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProfileCommand(sess.Actor(), body.Name, body.Email)
	if err != nil {
		return err
	}

	u, err := s.handlers.UpdateProfile.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toUser(u))
}

// GetCurrentUserStats handles GET /api/v1/users/me/stats.
func (s *Server) GetCurrentUserStats(ctx echo.Context) error {
	sess, err := requireSession(ctx)
	if err != nil {
		return err
	}

	stats, err := s.handlers.GetUserStats.Handle(ctx.Request().Context(), sess.Actor())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toUserStats(stats))
}

// UpdateUser handles PATCH /api/v1/users/{userId}.
func (s *Server) UpdateUser(ctx echo.Context, userID int64) error {
	sess, err := requireAdmin(ctx, "update a user")
	if err != nil {
		return err
	}

	var body servers.UpdateUserRequest
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	var role *user.Role
	if body.Role != nil {
		parsed, parseErr := user.ParseRole(string(*body.Role))
		if parseErr != nil {
			return parseErr
		}
		role = &parsed
	}

	cmd, err := commands.NewUpdateUserCommand(sess.Actor(), userID, role, body.Active)
	if err != nil {
		return err
	}

	u, err := s.handlers.UpdateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toUser(u))
}

// ListProducts handles GET /api/v1/products. Only available products are listed.
func (s *Server) ListProducts(ctx echo.Context, params servers.ListProductsParams) error {
	var category string
	if params.Category != nil {
		category = string(*params.Category)
	}

	query, err := queries.NewListAvailableProductsQuery(category)
	if err != nil {
		return err
	}

	products, err := s.handlers.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toProducts(products))
}

// ListAllProducts handles GET /api/v1/products/all.
func (s *Server) ListAllProducts(ctx echo.Context) error {
	if _, err := requireAdmin(ctx, "list unavailable products"); err != nil {
		return err
	}

	products, err := s.handlers.ListProducts.Handle(ctx.Request().Context(), queries.NewListAllProductsQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toProducts(products))
}

// GetProduct handles GET /api/v1/products/{productId}.
func (s *Server) GetProduct(ctx echo.Context, productID int64) error {
	p, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), productID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toProductView(p))
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	if _, err := requireAdmin(ctx, "create a product"); err != nil {
		return err
	}

	var body servers.NewProduct
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	price, err := kernel.MoneyFromFloat(body.Price)
	if err != nil {
		return err
	}
	category, err := product.ParseCategory(string(body.Category))
	if err != nil {
		return err
	}

	available := true
	if body.Available != nil {
		available = *body.Available
	}

	cmd, err := commands.NewCreateProductCommand(
		body.Name,
		deref(body.Description),
		price,
		category,
		deref(body.Image),
		available,
	)
	if err != nil {
		return err
	}

	p, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toProduct(p))
}

// UpdateProduct handles PATCH /api/v1/products/{productId}.
func (s *Server) UpdateProduct(ctx echo.Context, productID int64) error {
	if _, err := requireAdmin(ctx, "update a product"); err != nil {
		return err
	}

	var body servers.ProductPatch
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	changes := commands.ProductChanges{
		Name:        body.Name,
		Description: body.Description,
		Image:       body.Image,
		Available:   body.Available,
	}
	if body.Price != nil {
		price, err := kernel.MoneyFromFloat(*body.Price)
		if err != nil {
			return err
		}
		changes.Price = &price
	}
	if body.Category != nil {
		category, err := product.ParseCategory(string(*body.Category))
		if err != nil {
			return err
		}
		changes.Category = &category
	}

	cmd, err := commands.NewUpdateProductCommand(productID, changes)
	if err != nil {
		return err
	}

	p, err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toProduct(p))
}

// CreateOrder handles POST /api/v1/orders. The body is either a list of
// items or a single item given inline.
func (s *Server) CreateOrder(ctx echo.Context) error {
	sess, err := requireSession(ctx)
	if err != nil {
		return err
	}

	var body servers.NewOrder
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	items, err := orderItems(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(sess.Actor(), kernel.NewUUID(), items)
	if err != nil {
		return err
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.metrics.OrderCreated()

	// The order is stored at this point. A failed re-read must not turn into
	// an error the client would retry.
	view, err := s.orderView(ctx.Request().Context(), sess.Actor(), o.ID())
	if err != nil {
		s.logger.WarnContext(ctx.Request().Context(), "failed to reload created order",
			"order_id", o.ID().String(), "error", err)
		view = createdOrderView(o, sess.user.Name)
	}

	return ctx.JSON(http.StatusCreated, toOrder(view))
}

// ListOrders handles GET /api/v1/orders. Non-admins see their own orders only.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	sess, err := requireSession(ctx)
	if err != nil {
		return err
	}

	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewListOrdersQuery(sess.Actor(), status)
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	sess, err := requireSession(ctx)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return err
	}

	view, err := s.orderView(ctx.Request().Context(), sess.Actor(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID openapi_types.UUID) error {
	sess, err := requireSession(ctx)
	if err != nil {
		return err
	}

	var body servers.OrderStatusPatch
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return err
	}
	target, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(sess.Actor(), id, target)
	if err != nil {
		return err
	}

	o, err := s.handlers.TransitionOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.metrics.OrderTransitioned(o.Status())

	view, err := s.orderView(ctx.Request().Context(), sess.Actor(), o.ID())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// GetAdminStats handles GET /api/v1/admin/stats.
func (s *Server) GetAdminStats(ctx echo.Context) error {
	if _, err := requireAdmin(ctx, "view statistics"); err != nil {
		return err
	}

	stats, err := s.handlers.GetAdminStats.Handle(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toAdminStats(stats))
}

// GetHealth handles GET /api/v1/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	checks := make(map[string]string, len(s.healthChecks))
	healthy := true

	for name, check := range s.healthChecks {
		checkCtx, cancel := context.WithTimeout(ctx.Request().Context(), healthCheckTimeout)
		err := check(checkCtx)
		cancel()

		if err != nil {
			healthy = false
			checks[name] = "unavailable"
			s.logger.WarnContext(ctx.Request().Context(), "health check failed", "check", name, "error", err)
			continue
		}
		checks[name] = "ok"
	}

	if !healthy {
		return ctx.JSON(http.StatusServiceUnavailable, servers.Health{Status: "unavailable", Checks: &checks})
	}
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok", Checks: &checks})
}

func (s *Server) orderView(ctx context.Context, actor user.Actor, id kernel.UUID) (queries.OrderView, error) {
	query, err := queries.NewGetOrderQuery(actor, id)
	if err != nil {
		return queries.OrderView{}, err
	}
	return s.handlers.GetOrder.Handle(ctx, query)
}

func orderItems(body servers.NewOrder) ([]commands.OrderItem, error) {
	if body.Items != nil {
		items := make([]commands.OrderItem, len(*body.Items))
		for i, item := range *body.Items {
			items[i] = commands.OrderItem{
				ProductID: item.ProductId,
				Quantity:  item.Quantity,
				Note:      deref(item.Note),
			}
		}
		return items, nil
	}

	if body.ProductId == nil {
		return nil, errs.NewValueIsRequiredError("items")
	}

	item := commands.OrderItem{ProductID: *body.ProductId, Note: deref(body.Note)}
	if body.Quantity != nil {
		item.Quantity = *body.Quantity
	}
	return []commands.OrderItem{item}, nil
}

func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return err
	}
	return ctx.Validate(body)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
