package http

import (
	"log/slog"
	"time"

	_ "cafeteria/docs" // registers the OpenAPI document served under /swagger
	"cafeteria/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	BaseURL               = "/api/v1"
	DefaultRequestTimeout = 5 * time.Second
)

// NewEcho builds the echo instance serving the API, metrics and Swagger UI.
// Every request runs under requestTimeout; a zero value uses
// DefaultRequestTimeout.
func NewEcho(server *Server, requestTimeout time.Duration) *echo.Echo {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(server.baseLogger)

	e.Use(requestLogger(server.baseLogger))
	e.Use(server.metrics.Middleware())
	e.Use(middleware.Recover())
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: requestTimeout,
	}))

	api := e.Group(BaseURL, server.SessionMiddleware())
	servers.RegisterHandlers(api, server)

	e.GET("/metrics", echo.WrapHandler(server.metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			if v.Status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
