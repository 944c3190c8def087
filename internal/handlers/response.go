package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aurorapdrrmo/sitrep-backend/internal/apperr"
	"github.com/aurorapdrrmo/sitrep-backend/internal/requestdata"
	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps the typed service errors onto HTTP statuses,
// keeping the gate's structured reason visible to the caller.
func RespondServiceError(c *gin.Context, err error) {
	var gateErr *apperr.GateBlockedError
	switch {
	case errors.As(err, &gateErr):
		RespondError(c, http.StatusForbidden, "gate_blocked", err)
	case errors.Is(err, apperr.ErrConflict):
		RespondError(c, http.StatusConflict, "conflict", err)
	case errors.Is(err, apperr.ErrInvalidState):
		RespondError(c, http.StatusUnprocessableEntity, "invalid_state", err)
	case errors.Is(err, apperr.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, apperr.ErrValidation):
		RespondError(c, http.StatusBadRequest, "validation", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}

// CurrentActor resolves the authenticated caller from the request context.
func CurrentActor(c *gin.Context) (types.Actor, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.ActorID == uuid.Nil {
		return types.Actor{}, false
	}
	return types.Actor{ID: rd.ActorID, Name: rd.ActorName, IsAdmin: rd.IsAdmin}, true
}
