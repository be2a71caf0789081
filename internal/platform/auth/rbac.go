package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireRole returns middleware that admits callers holding at least one of
// the given roles. Unauthenticated callers get 401 so clients can distinguish
// "log in first" from "wrong role".
func RequireRole(roles ...Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident := FromContext(c.Request().Context())
			if !ident.Authenticated {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			for _, required := range roles {
				if ident.Role == required {
					return next(c)
				}
			}
			names := make([]string, len(roles))
			for i, r := range roles {
				names[i] = string(r)
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("required role: %s", strings.Join(names, " or ")))
		}
	}
}

// RequireAdmin admits city or hospital administrators. Finer per-object
// ownership checks still apply inside the services.
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(RoleCityAdmin, RoleHospitalAdmin)
}
