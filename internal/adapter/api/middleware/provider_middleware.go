package middleware

import (
	"net/http"

	"taacheck/internal/domain/entity"
	"taacheck/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

type ProviderMiddleware struct {
	userRepo repository.UserRepository
}

func NewProviderMiddleware(userRepo repository.UserRepository) *ProviderMiddleware {
	return &ProviderMiddleware{
		userRepo: userRepo,
	}
}

func (m *ProviderMiddleware) ProviderOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {

		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify provider role")
		}

		if user.Role != entity.RoleServiceProvider {
			return echo.NewHTTPError(http.StatusForbidden, "Service provider role required")
		}

		return next(c)
	}
}
