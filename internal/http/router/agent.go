package router

import (
	"github.com/gin-gonic/gin"

	"voicedesk.app/api-server/internal/http/handler"
	"voicedesk.app/api-server/internal/http/middleware"
)

// AgentRouter registers agent routes. Listing validates the org_id parameter
// before the session resolves, so a malformed request is 400 regardless of
// authentication state.
func AgentRouter(rg *gin.RouterGroup, h *handler.AgentHandler, requireSession gin.HandlerFunc) {
	rg.GET("", middleware.RequireOrgID(), requireSession, h.List)
	rg.POST("", requireSession, h.Create)
}
