package auth

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Claims is the JWT payload issued by the external identity provider. Only
// role and hospital binding are consumed here; token issuance itself is out of
// scope for this service.
type Claims struct {
	jwt.RegisteredClaims
	Role       string `json:"role"`
	HospitalID int64  `json:"hospital_id,omitempty"`
}

// Middleware parses an optional Bearer token and threads the resolved
// Identity through the request context. Requests without a token proceed as
// Anonymous; public read endpoints stay reachable and the role gates reject
// writes downstream. A malformed or badly signed token is rejected outright.
func Middleware(signingKey []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				return signingKey, nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			ident := Identity{
				UserID:        claims.Subject,
				Role:          ParseRole(claims.Role),
				HospitalID:    claims.HospitalID,
				Authenticated: true,
			}
			c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), ident)))

			return next(c)
		}
	}
}
