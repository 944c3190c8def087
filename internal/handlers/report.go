package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aurorapdrrmo/sitrep-backend/internal/audit"
	"github.com/aurorapdrrmo/sitrep-backend/internal/services"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

// ReportRoutes is the non-generic face a report kind's handler presents
// to the router.
type ReportRoutes interface {
	Slug() string
	Register(rg *gin.RouterGroup)
}

// ReportHandler serves the submission, listing and history endpoints for
// one report kind.
type ReportHandler[T any, PT interface {
	*T
	types.Report
}] struct {
	slug     string
	svc      *services.ReportService[T, PT]
	history  *audit.HistoryService
	typhoons services.TyphoonService
}

func NewReportHandler[T any, PT interface {
	*T
	types.Report
}](slug string, svc *services.ReportService[T, PT], history *audit.HistoryService, typhoons services.TyphoonService) *ReportHandler[T, PT] {
	return &ReportHandler[T, PT]{
		slug:     slug,
		svc:      svc,
		history:  history,
		typhoons: typhoons,
	}
}

func (h *ReportHandler[T, PT]) Slug() string { return h.slug }

func (h *ReportHandler[T, PT]) Register(rg *gin.RouterGroup) {
	grp := rg.Group("/reports/" + h.slug)
	grp.GET("", h.List)
	grp.POST("", h.Submit)
	grp.PUT("/:id", h.Update)
	grp.GET("/history", h.BatchHistory)
	grp.GET("/:id/history", h.History)
}

// Submit accepts either one object or a JSON array of them.
func (h *ReportHandler[T, PT]) Submit(c *gin.Context) {
	actor, ok := CurrentActor(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}

	var rows []PT
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var batch []T
		if err := json.Unmarshal(body, &batch); err != nil {
			RespondError(c, http.StatusBadRequest, "validation", err)
			return
		}
		for i := range batch {
			rows = append(rows, PT(&batch[i]))
		}
	} else {
		var single T
		if err := json.Unmarshal(body, &single); err != nil {
			RespondError(c, http.StatusBadRequest, "validation", err)
			return
		}
		rows = append(rows, PT(&single))
	}

	created, err := h.svc.Submit(c.Request.Context(), actor, rows)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rows": created})
}

func (h *ReportHandler[T, PT]) Update(c *gin.Context) {
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

	existing, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	if existing == nil {
		RespondError(c, http.StatusNotFound, "not_found", nil)
		return
	}

	// Bind over a copy of the stored row so fields absent from the payload
	// keep their stored values instead of collapsing to zero.
	row := *existing
	if err := c.ShouldBindJSON(&row); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	incoming := PT(&row)
	incoming.SetReportID(id)

	changed, err := h.svc.Update(c.Request.Context(), actor, incoming)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"changed": changed})
}

// List returns the rows for the requested typhoon, defaulting to the
// currently open one.
func (h *ReportHandler[T, PT]) List(c *gin.Context) {
	ctx := c.Request.Context()

	var typhoonID uuid.UUID
	if q := c.Query("typhoon_id"); q != "" {
		id, err := uuid.Parse(q)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "validation", err)
			return
		}
		typhoonID = id
	} else {
		current, err := h.typhoons.GetActiveOrPaused(ctx)
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		if current == nil {
			RespondOK(c, gin.H{"rows": []PT{}})
			return
		}
		typhoonID = current.ID
	}

	rows, err := h.svc.ListByTyphoon(ctx, typhoonID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"rows": rows})
}

func (h *ReportHandler[T, PT]) History(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	history, err := h.history.GetHistory(c.Request.Context(), nil, h.svc.Kind(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"history": history})
}

// BatchHistory serves the "<recordId>_<field>" keyed map the report
// tables consume, avoiding per-row history queries.
func (h *ReportHandler[T, PT]) BatchHistory(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("ids"))
	if raw == "" {
		RespondError(c, http.StatusBadRequest, "validation", nil)
		return
	}
	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			RespondError(c, http.StatusBadRequest, "validation", err)
			return
		}
		ids = append(ids, id)
	}
	history, err := h.history.GetHistoryForBatch(c.Request.Context(), nil, h.svc.Kind(), ids)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"history": history})
}
