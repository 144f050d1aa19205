package middleware

import (
	"log/slog"

	deliverycontext "gamehub/internal/delivery/context"
	"gamehub/internal/domain/event"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with an ID, taken from X-Request-Id or generated.
// The ID scopes the request logger and becomes the correlation ID of the events the request emits.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = event.RandomKey()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithLogger(c.Request().Context(), m.logger.With(slog.String("request_id", requestID)))
		ctx = event.WithCorrelationID(ctx, requestID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
