package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"voicedesk.app/api-server/internal/http/handler"
	"voicedesk.app/api-server/internal/http/middleware"
	"voicedesk.app/api-server/internal/service"
)

type Handlers struct {
	Auth          *handler.AuthHandler
	Organizations *handler.OrganizationHandler
	Agents        *handler.AgentHandler
	Voices        *handler.VoiceHandler
}

// New assembles the gin engine. The voice route runs the rate limiter before
// session resolution, and agent listing checks its required query parameter
// first; everything else resolves the session up front.
func New(h Handlers, auth service.AuthService, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("api-server"))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	AuthRouter(authGroup, h.Auth, auth)

	requireSession := middleware.RequireSession(auth)

	orgs := r.Group("/orgs", requireSession)
	OrganizationRouter(orgs, h.Organizations)

	agents := r.Group("/agents")
	AgentRouter(agents, h.Agents, requireSession)

	voices := r.Group("/voices", middleware.RateLimit(limiter), requireSession)
	VoiceRouter(voices, h.Voices)

	return r
}
