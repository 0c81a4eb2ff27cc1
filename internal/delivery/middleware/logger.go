package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"locgate/config"
	deliverycontext "locgate/internal/delivery/context"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs one line per request when env.debug is set.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	quiet  map[string]bool
}

// NewLoggerMiddleware creates the request logger. Probe routes (/health,
// /metrics) are logged at debug level.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
		quiet:  map[string]bool{"/health": true, "/metrics": true},
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	// The error handler has not run yet, so an error without a written
	// response is still a failure.
	status := res.Status
	if err != nil && !res.Committed {
		status = http.StatusInternalServerError
		var httpErr *echo.HTTPError
		var appErr domainerrors.AppError
		switch {
		case errors.As(err, &httpErr):
			status = httpErr.Code
		case errors.As(err, &appErr):
			status = appErr.HTTPCode()
		}
	}

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	case m.quiet[c.Path()]:
		level = slog.LevelDebug
	}

	m.logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}
