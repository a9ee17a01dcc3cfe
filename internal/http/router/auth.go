package router

import (
	"github.com/gin-gonic/gin"

	"voicedesk.app/api-server/internal/http/handler"
	"voicedesk.app/api-server/internal/http/middleware"
	"voicedesk.app/api-server/internal/service"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, auth service.AuthService) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)
	rg.POST("/logout", h.Logout)
	rg.GET("/me", middleware.RequireSession(auth), h.Me)
}
