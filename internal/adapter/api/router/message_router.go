package router

import (
	"github.com/labstack/echo/v4"

	"subleasehub/internal/adapter/api/handler"
	"subleasehub/internal/adapter/api/middleware"
)

func SetupMessageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	messageHandler := handler.GetMessageHandler()

	messages := e.Group("/v1/messages")
	messages.Use(authMiddleware.Authenticate)
	messages.POST("", messageHandler.SendMessage)
	messages.GET("", messageHandler.ListConversation)
}
