package router

import (
	"taacheck/internal/adapter/api/handler"
	"taacheck/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")

	auth.POST("/register", authHandler.Register)
	auth.POST("/register-provider", authHandler.RegisterProvider)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, authMiddleware.Authenticate)
}
