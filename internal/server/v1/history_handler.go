package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/assist-router/internal/store"
	"github.com/nulzo/assist-router/pkg/api"
)

const defaultHistoryLimit = 200

// HistoryHandler serves persisted chat transcripts.
type HistoryHandler struct {
	repo store.Repository
}

func NewHistoryHandler(repo store.Repository) *HistoryHandler {
	return &HistoryHandler{repo: repo}
}

func (h *HistoryHandler) ListSession(c *gin.Context) {
	sessionID := c.Param("session")

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			_ = c.Error(api.BadRequestError("limit must be a positive integer"))
			return
		}
		limit = n
	}

	entries, err := h.repo.Transcripts().ListBySession(c.Request.Context(), sessionID, limit)
	if err != nil {
		_ = c.Error(api.InternalError("Failed to load history", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"object":     "list",
		"data":       entries,
	})
}

func (h *HistoryHandler) DeleteSession(c *gin.Context) {
	sessionID := c.Param("session")

	if err := h.repo.Transcripts().DeleteSession(c.Request.Context(), sessionID); err != nil {
		_ = c.Error(api.InternalError("Failed to delete history", err.Error()))
		return
	}

	c.Status(http.StatusNoContent)
}
