package router

import (
	"taacheck/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, providerMiddleware *middleware.ProviderMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupSessionRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupPostRouter(e, authMiddleware)
	SetupServiceRequestRouter(e, authMiddleware)
	SetupProviderRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware, providerMiddleware)
	SetupHealthRouter(e)
}
