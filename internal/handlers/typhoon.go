package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aurorapdrrmo/sitrep-backend/internal/export"
	"github.com/aurorapdrrmo/sitrep-backend/internal/gate"
	"github.com/aurorapdrrmo/sitrep-backend/internal/services"
)

type TyphoonHandler struct {
	typhoonService services.TyphoonService
	workbook       *export.WorkbookService
	formGate       *gate.FormGate
}

func NewTyphoonHandler(typhoonService services.TyphoonService, workbook *export.WorkbookService, formGate *gate.FormGate) *TyphoonHandler {
	return &TyphoonHandler{
		typhoonService: typhoonService,
		workbook:       workbook,
		formGate:       formGate,
	}
}

// Current reports the open typhoon (if any) together with the caller's
// gate decision so the UI can render active/paused/none form states.
func (h *TyphoonHandler) Current(c *gin.Context) {
	actor, ok := CurrentActor(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	decision, err := h.formGate.Check(c.Request.Context(), nil, actor)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"typhoon":      decision.Typhoon,
		"gate":         decision.Result,
		"writable":     decision.Writable(),
		"page_visible": decision.PageVisible(),
	})
}

func (h *TyphoonHandler) Create(c *gin.Context) {
	actor, ok := CurrentActor(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	typhoon, err := h.typhoonService.Create(c.Request.Context(), actor, body.Name, body.Description)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"typhoon": typhoon})
}

func (h *TyphoonHandler) Pause(c *gin.Context) {
	h.transition(c, "pause")
}

func (h *TyphoonHandler) Resume(c *gin.Context) {
	h.transition(c, "resume")
}

// End generates the consolidated workbook first, then closes the typhoon
// with the artifact path recorded on it.
func (h *TyphoonHandler) End(c *gin.Context) {
	actor, ok := CurrentActor(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}

	typhoon, err := h.typhoonService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	if typhoon == nil {
		RespondError(c, http.StatusNotFound, "not_found", nil)
		return
	}

	artifactPath, err := h.workbook.Build(c.Request.Context(), typhoon)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	ended, err := h.typhoonService.End(c.Request.Context(), actor, id, artifactPath)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"typhoon": ended})
}

// Export rebuilds the consolidated workbook for a typhoon on demand,
// without touching its lifecycle.
func (h *TyphoonHandler) Export(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	typhoon, err := h.typhoonService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	if typhoon == nil {
		RespondError(c, http.StatusNotFound, "not_found", nil)
		return
	}
	artifactPath, err := h.workbook.Build(c.Request.Context(), typhoon)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"path": artifactPath})
}

func (h *TyphoonHandler) transition(c *gin.Context, action string) {
	actor, ok := CurrentActor(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}

	var typhoon any
	switch action {
	case "pause":
		typhoon, err = h.typhoonService.Pause(c.Request.Context(), actor, id)
	case "resume":
		typhoon, err = h.typhoonService.Resume(c.Request.Context(), actor, id)
	}
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"typhoon": typhoon})
}
