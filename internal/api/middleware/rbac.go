package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/kt1928/re-platform2.0/internal/core/domain"
)

// RequireRole gates a route on the resolved user's role. Admin passes every
// gate; other roles pass only an exact match. Must be chained after Auth.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(UserContextKey).(*domain.User)
			if user == nil {
				return domain.ErrUnauthenticated
			}
			if !user.Role.Satisfies(required) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
