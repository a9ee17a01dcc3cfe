package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const orgIDContextKey = "request_org_id"

// RequireOrgID validates the org_id query parameter. It runs ahead of session
// resolution, so a request missing the parameter reads as 400 even when
// anonymous.
func RequireOrgID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("org_id")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "org_id parameter is required"})
			return
		}
		orgID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid org_id parameter"})
			return
		}
		c.Set(orgIDContextKey, orgID)
		c.Next()
	}
}

// OrgID returns the organization ID resolved by RequireOrgID.
func OrgID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(orgIDContextKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
