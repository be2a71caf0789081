// Package respond provides the response envelope used by report and
// search endpoints: {"code": ..., "message": ..., "data": ...}.
package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the wire format for non-CRUD endpoints.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OK writes a 200 envelope with the given payload. Code 0 marks success,
// matching what API consumers already parse.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error is the failure counterpart of OK for enveloped endpoints; the
// envelope code matches the HTTP status so clients can branch on either.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{
		Code:    status,
		Message: message,
	})
}
