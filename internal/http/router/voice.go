package router

import (
	"github.com/gin-gonic/gin"

	"voicedesk.app/api-server/internal/http/handler"
)

func VoiceRouter(rg *gin.RouterGroup, h *handler.VoiceHandler) {
	rg.GET("", h.List)
}
