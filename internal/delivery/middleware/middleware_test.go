package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamehub/config"
	deliverycontext "gamehub/internal/delivery/context"
	"gamehub/internal/domain/event"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(logger *slog.Logger, debug bool, h echo.HandlerFunc) *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/*", h)

	return e
}

func TestRequestID_PropagatesHeader(t *testing.T) {
	var seen, correlation string
	e := newTestEcho(slog.New(slog.DiscardHandler), false, func(c echo.Context) error {
		seen = deliverycontext.GetRequestID(c)
		correlation = event.CorrelationID(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-7", seen)
	assert.Equal(t, "req-7", correlation)
	assert.Equal(t, "req-7", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestID_Generated(t *testing.T) {
	e := newTestEcho(slog.New(slog.DiscardHandler), false, func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		status  int
		logged  bool
		contain string
	}{
		{name: "success hidden outside debug", path: "/x", status: http.StatusOK},
		{name: "success logged in debug", debug: true, path: "/x", status: http.StatusOK, logged: true, contain: "level=INFO"},
		{name: "health hidden in debug", debug: true, path: "/health", status: http.StatusOK},
		{name: "client error", path: "/x", status: http.StatusNotFound, logged: true, contain: "level=WARN"},
		{name: "server error", path: "/x", status: http.StatusInternalServerError, logged: true, contain: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			e := newTestEcho(logger, tt.debug, func(c echo.Context) error {
				c.Set(ContextKeySubject, "operator")

				return c.NoContent(tt.status)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.status, rec.Code)

			if !tt.logged {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.contain)
			assert.Contains(t, buf.String(), "subject=operator")
			assert.Contains(t, buf.String(), "request_id=")
		})
	}
}

func TestLogger_ReportsHandlerError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	e := newTestEcho(logger, false, func(echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "busy")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, buf.String(), "status=409")
	assert.Contains(t, buf.String(), "busy")
}
