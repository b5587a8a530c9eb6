package http

import (
	"context"
	"log/slog"
	"strings"

	"ordermanager/internal/docs"
	"ordermanager/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries what NewRouter needs besides the server.
type RouterConfig struct {
	BasePath string
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// NewRouter builds the echo instance with middleware, the error handler and
// every route of the API.
func NewRouter(s *Server, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.Middleware())
	}
	e.Use(requestLogger(cfg.Logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
	}))

	basePath := strings.TrimRight(cfg.BasePath, "/")
	docs.SetBasePath(basePath)
	s.Register(e.Group(basePath + "/orders"))

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	}

	return e
}

// Register mounts the order routes on g. Static segments win over :id.
func (s *Server) Register(g *echo.Group) {
	g.POST("", s.CreateOrder)
	g.GET("", s.GetOrders)
	g.GET("/health", s.Health)
	g.GET("/customer/:email", s.GetOrdersByCustomerEmail)
	g.GET("/status/:status", s.GetOrdersByStatus)
	g.GET("/date-range", s.GetOrdersByDateRange)
	g.GET("/count/status/:status", s.CountOrdersByStatus)
	g.GET("/:id", s.GetOrder)
	g.PUT("/:id", s.UpdateOrder)
	g.PATCH("/:id/status", s.UpdateOrderStatus)
	g.DELETE("/:id", s.DeleteOrder)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(context.Background(), level, "HTTP request",
				slog.String("request_id", v.RequestID),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
