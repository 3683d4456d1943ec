package router

import (
	"github.com/labstack/echo/v4"

	"subleasehub/internal/adapter/api/handler"
	"subleasehub/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()
	agreementHandler := handler.GetAgreementHandler()
	fileHandler := handler.GetFileHandler()

	listings := e.Group("/v1/listings")
	listings.GET("", listingHandler.ListListings)
	listings.GET("/:id", listingHandler.GetListing)
	listings.GET("/:id/availability", agreementHandler.CheckAvailability)
	listings.GET("/:id/images", fileHandler.ListListingImages)

	authed := e.Group("/v1/listings")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", listingHandler.CreateListing)
	authed.PUT("/:id", listingHandler.UpdateListing)
	authed.DELETE("/:id", listingHandler.DeleteListing)
	authed.POST("/:id/images", fileHandler.UploadListingImage)
	authed.POST("/:id/accept", agreementHandler.CreateAgreement)
}
