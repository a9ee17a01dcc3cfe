package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"voicedesk.app/api-server/internal/http/dto"
	"voicedesk.app/api-server/internal/http/middleware"
	"voicedesk.app/api-server/internal/service"
)

type AgentHandler struct {
	agents service.AgentService
}

func NewAgentHandler(agents service.AgentService) *AgentHandler {
	return &AgentHandler{agents: agents}
}

// List handles GET /agents?org_id=. The org_id parameter is resolved by
// middleware.RequireOrgID before the session; membership in the organization
// is required, any role suffices.
func (h *AgentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := middleware.OrgID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "org_id parameter is required"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	agents, err := h.agents.List(ctx, user.ID, orgID)
	if err != nil {
		if respondDenied(c, err) {
			return
		}
		slog.ErrorContext(ctx, "failed to list agents", "error", err, "org_id", orgID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"agents": dto.ToAgentResponses(agents)})
}

// Create handles POST /agents. Validation failures short-circuit before any
// store mutation.
func (h *AgentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent, err := h.agents.Create(ctx, user.ID, req.ToParams())
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if respondDenied(c, err) {
			return
		}
		slog.ErrorContext(ctx, "failed to create agent", "error", err, "org_id", req.OrgID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"agent": dto.ToAgentResponse(agent)})
}

// respondDenied maps authorization failures to 403. Missing membership and a
// nonexistent organization are indistinguishable to the caller.
func respondDenied(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return true
	case errors.Is(err, service.ErrInsufficientRole):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return true
	}
	return false
}
