package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"voicedesk.app/api-server/internal/http/dto"
	"voicedesk.app/api-server/internal/http/middleware"
	"voicedesk.app/api-server/internal/service"
)

type OrganizationHandler struct {
	organizations service.OrganizationService
}

func NewOrganizationHandler(organizations service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{organizations: organizations}
}

// List handles GET /orgs, returning the caller's organizations with their
// role in each.
func (h *OrganizationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orgs, err := h.organizations.ListForUser(ctx, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list organizations", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"organizations": dto.ToOrganizationWithRoleResponses(orgs)})
}

// Create handles POST /orgs. Any authenticated user may create an
// organization; the creator becomes its owner.
func (h *OrganizationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.organizations.Create(ctx, req.Name, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create organization", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"organization": dto.ToOrganizationResponse(org)})
}
