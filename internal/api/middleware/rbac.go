package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/demoforums/forum-api/internal/core/domain"
	"github.com/demoforums/forum-api/internal/core/ports"
)

// RBAC gates a route on a required role. It re-resolves the session through
// the session manager's role check, so the decision always reflects the
// user's current role.
func RBAC(sessions ports.SessionService, role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, _ := c.Get(ContextKeyToken).(string)
			if token == "" {
				token = ExtractToken(c)
			}

			if _, err := sessions.RequireRole(c.Request().Context(), token, role); err != nil {
				return err
			}
			return next(c)
		}
	}
}
