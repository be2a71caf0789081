package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hra/hra/internal/platform/auth"
)

// Logger emits one structured line per request. Authenticated requests carry
// the caller's role so audit queries can separate admin traffic from public
// reads.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid, _ := c.Get("request_id").(string)

			err := next(c)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}
			evt = evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP())

			if ident := auth.FromContext(c.Request().Context()); ident.Authenticated {
				evt = evt.Str("role", string(ident.Role))
			}
			evt.Msg("request")

			return err
		}
	}
}
