package http

import (
	"net/http"
	"sync"
	"time"

	"attendance/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/swaggo/swag"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const locationRoute = "/api/v1/workers/:workerId/location"

type RouterConfig struct {
	// LocationRatePerSecond limits location reports per worker; <= 0 disables the limit.
	LocationRatePerSecond float64
	LocationBurst         int
	LogLevel              log.Lvl
}

// NewRouter wires the API, the operator event stream, swagger UI and health check.
func NewRouter(cfg RouterConfig, server *Server, eventStream http.Handler, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(cfg.LogLevel)
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	if cfg.LocationRatePerSecond > 0 {
		e.Use(locationRateLimiter(cfg.LocationRatePerSecond, cfg.LocationBurst))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	registerSwaggerDoc(logger)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if eventStream != nil {
		e.GET("/api/v1/events", echo.WrapHandler(eventStream))
	}

	servers.RegisterHandlers(e, server)
	return e
}

func locationRateLimiter(perSecond float64, burst int) echo.MiddlewareFunc {
	if burst <= 0 {
		burst = int(perSecond) + 1
	}
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() != locationRoute
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perSecond),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.Param("workerId"), nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.JSON(http.StatusTooManyRequests, servers.Error{
				Code:    http.StatusTooManyRequests,
				Message: "Too many location reports",
			})
		},
	})
}

type openAPIDoc string

func (d openAPIDoc) ReadDoc() string {
	return string(d)
}

var swaggerOnce sync.Once

// registerSwaggerDoc serves the embedded OpenAPI document to the swagger UI.
func registerSwaggerDoc(logger *zap.Logger) {
	swaggerOnce.Do(func() {
		spec, err := servers.GetSwagger()
		if err != nil {
			logger.Warn("openapi document unavailable", zap.Error(err))
			return
		}
		raw, err := spec.MarshalJSON()
		if err != nil {
			logger.Warn("openapi document unavailable", zap.Error(err))
			return
		}
		swag.Register(swag.Name, openAPIDoc(raw))
	})
}
