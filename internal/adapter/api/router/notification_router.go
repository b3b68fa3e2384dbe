package router

import (
	"taacheck/internal/adapter/api/handler"
	"taacheck/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupNotificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, providerMiddleware *middleware.ProviderMiddleware) {
	notificationHandler := handler.GetNotificationHandler()

	e.POST("/v1/acceptances", notificationHandler.SubmitAcceptance, authMiddleware.Authenticate)

	notifications := e.Group("/v1/notifications")
	notifications.Use(authMiddleware.Authenticate)

	notifications.GET("", notificationHandler.List)

	// Settling an acceptance is a provider action.
	notifications.POST("/:id/accept", notificationHandler.Accept, providerMiddleware.ProviderOnly)
	notifications.POST("/:id/decline", notificationHandler.Decline, providerMiddleware.ProviderOnly)
}
