package router

import (
	"taacheck/internal/adapter/api/handler"
	"taacheck/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProviderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	providerHandler := handler.GetProviderHandler()

	providers := e.Group("/v1/providers")
	providers.Use(authMiddleware.Authenticate)

	providers.GET("", providerHandler.List)
	providers.GET("/:id", providerHandler.Get)
	providers.POST("/:id/request", providerHandler.Request)
}
