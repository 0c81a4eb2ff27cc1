package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"locgate/config"
	"locgate/internal/delivery"
	apimiddleware "locgate/internal/delivery/api/middleware"
	"locgate/internal/delivery/api/router"
	"locgate/internal/delivery/api/validator"
	"locgate/internal/delivery/middleware"
	"locgate/internal/domain/lifecycle"
	"locgate/internal/errors"
	"locgate/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// zoneServer serves the zone-check and waitlist API over h2c.
type zoneServer struct {
	hostPort string
	h2       *http2.Server
	logger   *slog.Logger
	server   *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &zoneServer{
		hostPort: net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		h2:       &http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout},
		logger:   params.Logger,
		server:   NewEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho wires middleware, error handling and routes without binding a port.
func NewEcho(params ServerParams) *echo.Echo {
	timeouts := params.Cfg.HTTP.Timeouts

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	// Order matters: panics are caught first and the request id must exist
	// before anything logs.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	if params.Metrics != nil {
		e.Use(params.Metrics.Middleware)
	}
	e.Use(echomiddleware.CORS())
	if limit := params.Cfg.HTTP.MaxRequestBodySize; limit != "" {
		e.Use(echomiddleware.BodyLimit(limit))
	}

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

func (s *zoneServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting zone API server", slog.String("host_port", s.hostPort))
	if err := s.server.StartH2CServer(s.hostPort, s.h2); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *zoneServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down zone API server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
