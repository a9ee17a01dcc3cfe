package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"voicedesk.app/api-server/internal/service"
)

type VoiceHandler struct {
	voices service.VoiceService
}

func NewVoiceHandler(voices service.VoiceService) *VoiceHandler {
	return &VoiceHandler{voices: voices}
}

// List handles GET /voices. Rate limiting and session resolution run as
// middleware before this; a fresh cache means no upstream call at all.
func (h *VoiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	voices, err := h.voices.ListVoices(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch voices", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch voices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"voices": voices})
}
