package router

import (
	"github.com/labstack/echo/v4"

	"subleasehub/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware)
	SetupAgreementRouter(e, authMiddleware)
	SetupMessageRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
