package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
)

// RBAC lets a request through only when the role Auth stored on the context
// is one of roles. It must be installed after Auth.
func RBAC(roles ...string) echo.MiddlewareFunc {
	roles = slices.Clone(roles)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if role == "" || !slices.Contains(roles, role) {
				return echo.NewHTTPError(http.StatusForbidden, "role not allowed to post status events")
			}
			return next(c)
		}
	}
}
