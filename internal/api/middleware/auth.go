package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kt1928/re-platform2.0/internal/api/metrics"
	"github.com/kt1928/re-platform2.0/internal/core/domain"
	"github.com/kt1928/re-platform2.0/internal/core/ports"
)

// UserContextKey is where Auth stores the resolved user on the echo context.
const UserContextKey = "user"

// Auth extracts the bearer token, resolves it to a live user record, and
// injects the user into the request context. Resolving through the service
// (instead of trusting raw token claims) means deactivated or deleted users
// are rejected here even while their tokens are still unexpired.
func Auth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenStr, err := bearerToken(c)
			if err != nil {
				metrics.TokenResolutionsTotal.WithLabelValues("unauthenticated").Inc()
				return err
			}

			user, err := authService.ResolveUser(c.Request().Context(), tokenStr)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrInactiveUser):
					metrics.TokenResolutionsTotal.WithLabelValues("inactive").Inc()
				case errors.Is(err, domain.ErrUnauthenticated):
					metrics.TokenResolutionsTotal.WithLabelValues("unauthenticated").Inc()
				}
				return err
			}

			metrics.TokenResolutionsTotal.WithLabelValues("ok").Inc()
			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", domain.ErrUnauthenticated
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", domain.ErrUnauthenticated
	}
	return strings.TrimSpace(parts[1]), nil
}
