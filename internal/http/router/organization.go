package router

import (
	"github.com/gin-gonic/gin"

	"voicedesk.app/api-server/internal/http/handler"
)

func OrganizationRouter(rg *gin.RouterGroup, h *handler.OrganizationHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
}
