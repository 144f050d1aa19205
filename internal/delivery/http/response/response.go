// Package response writes the JSON envelopes of the admin API.
package response

import (
	"net/http"

	deliverycontext "gamehub/internal/delivery/context"
	domainerrors "gamehub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Body is the envelope of every admin API response. Exactly one of Data and Error is set.
type Body struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
	Meta  Meta       `json:"meta"`
}

// ErrorInfo carries the business error code, e.g. "GAME_NOT_OWNED".
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Meta is set on every response; Count only on lists.
type Meta struct {
	RequestID string `json:"request_id,omitempty"`
	Count     *int   `json:"count,omitempty"`
}

func meta(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Body{Data: data, Meta: meta(c)})
}

// List returns a 200 response holding items and their count.
func List[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	m := meta(c)
	count := len(items)
	m.Count = &count

	return c.JSON(http.StatusOK, Body{Data: items, Meta: m})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// No details on 5xx or on authentication failures
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, Body{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// AppError writes an application error with its own status and code.
// err is the full chain appErr was found in; its text becomes the details of a 4xx response.
func AppError(c echo.Context, appErr domainerrors.AppError, err error) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}
	if err != nil && err.Error() != appErr.Message() {
		details = err.Error()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
