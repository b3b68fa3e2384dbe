package router

import (
	"taacheck/internal/adapter/api/handler"
	"taacheck/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPostRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	postHandler := handler.GetPostHandler()

	posts := e.Group("/v1/posts")
	posts.Use(authMiddleware.Authenticate)

	posts.GET("", postHandler.ListFeed)
	posts.GET("/mine", postHandler.ListMine)
	posts.POST("", postHandler.Create)
	posts.PUT("/:id", postHandler.Update)
	posts.DELETE("/:id", postHandler.Delete)
	posts.POST("/:id/like", postHandler.ToggleLike)
}
