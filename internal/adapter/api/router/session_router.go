package router

import (
	"taacheck/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupSessionRouter(e *echo.Echo) {
	sessionHandler := handler.GetSessionHandler()

	// Unauthenticated on purpose: the routing gate itself decides whether
	// the presented token is still good.
	e.POST("/v1/session/route", sessionHandler.Route)
}
