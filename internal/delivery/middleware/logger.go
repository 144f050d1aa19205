// Package middleware holds the echo middleware shared by every HTTP surface.
package middleware

import (
	"log/slog"
	"strings"
	"time"

	"gamehub/config"
	deliverycontext "gamehub/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ContextKeySubject is where authentication stores the caller; the access log reports it.
const ContextKeySubject = "subject"

// LoggerMiddleware writes one access log line per request.
// In debug every request is logged, otherwise only failures.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	quiet  []string
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
		quiet:  []string{"/health", "/metrics"},
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// resolve the status now; the error handler runs after us
			c.Error(err)
		}
		m.logRequest(c, start, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := c.Response().Status

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}
	if level == slog.LevelInfo && (!m.debug || m.isQuiet(req.URL.Path)) {
		return
	}

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if subject, ok := c.Get(ContextKeySubject).(string); ok {
		attrs = append(attrs, slog.String("subject", subject))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "[HTTP] Request", attrs...)
}

func (m *LoggerMiddleware) isQuiet(path string) bool {
	for _, p := range m.quiet {
		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
