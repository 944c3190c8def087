package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aurorapdrrmo/sitrep-backend/internal/services"
)

type RelinkHandler struct {
	relinkService *services.RelinkService
}

func NewRelinkHandler(relinkService *services.RelinkService) *RelinkHandler {
	return &RelinkHandler{relinkService: relinkService}
}

// Relink backfills orphaned report rows onto the given typhoon.
func (h *RelinkHandler) Relink(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	result, err := h.relinkService.RelinkOrphans(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
