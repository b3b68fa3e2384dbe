package router

import (
	"taacheck/internal/adapter/api/handler"
	"taacheck/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupServiceRequestRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	serviceRequestHandler := handler.GetServiceRequestHandler()

	requests := e.Group("/v1/service-requests")
	requests.Use(authMiddleware.Authenticate)

	requests.GET("", serviceRequestHandler.List)
	requests.GET("/mine", serviceRequestHandler.ListMine)
	requests.GET("/:id", serviceRequestHandler.Get)
	requests.POST("", serviceRequestHandler.Create)
	requests.PUT("/:id", serviceRequestHandler.Update)
	requests.DELETE("/:id", serviceRequestHandler.Delete)
}
