// Package httperr maps service and storage errors onto HTTP status codes so
// handlers do not repeat the same errors.Is ladder.
package httperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hra/hra/internal/platform/auth"
	"github.com/hra/hra/internal/platform/db"
)

// Map converts err into an echo HTTPError. Storage sentinels become 404/409,
// authorization failures 403, and anything else a 400 with the error text.
func Map(err error) error {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, db.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, "conflict")
	case errors.Is(err, auth.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
