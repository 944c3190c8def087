package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aurorapdrrmo/sitrep-backend/internal/services"
)

type SummaryHandler struct {
	summaryService *services.SummaryService
}

func NewSummaryHandler(summaryService *services.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

func (h *SummaryHandler) Summary(c *gin.Context) {
	summary, err := h.summaryService.Summarize(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, summary)
}
