package router

import (
	"github.com/labstack/echo/v4"

	"subleasehub/internal/adapter/api/handler"
	"subleasehub/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()
	fileHandler := handler.GetFileHandler()

	e.GET("/v1/users", userHandler.ListUsers)

	me := e.Group("/v1/users/me")
	me.Use(authMiddleware.Authenticate)
	me.GET("", userHandler.GetMe)
	me.POST("/profile-image", fileHandler.UploadProfileImage)
	me.GET("/saved-listings", userHandler.ListSavedListings)
	me.POST("/saved-listings/:listingId", userHandler.SaveListing)
	me.DELETE("/saved-listings/:listingId", userHandler.UnsaveListing)
}
