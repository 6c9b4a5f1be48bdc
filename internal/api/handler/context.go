package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kt1928/re-platform2.0/internal/api/middleware"
	"github.com/kt1928/re-platform2.0/internal/core/domain"
)

// currentUser extracts the user injected by the Auth middleware. Its absence
// means the route was wired without the middleware; treat that the same as a
// missing token rather than panicking.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
