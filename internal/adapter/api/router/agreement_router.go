package router

import (
	"github.com/labstack/echo/v4"

	"subleasehub/internal/adapter/api/handler"
	"subleasehub/internal/adapter/api/middleware"
)

func SetupAgreementRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	agreementHandler := handler.GetAgreementHandler()
	contractHandler := handler.GetContractHandler()

	agreements := e.Group("/v1/agreements")
	agreements.GET("", agreementHandler.ListAgreements)
	agreements.GET("/:id", agreementHandler.GetAgreement)
	agreements.GET("/:id/contract", contractHandler.DownloadContract)

	authed := e.Group("/v1/agreements")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("/:id/sign", agreementHandler.Sign)
	authed.DELETE("/:id", agreementHandler.DeleteAgreement)
}
