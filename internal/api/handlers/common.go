package handlers

import (
	"net/http"

	"photostudio-backend/internal/auth"
	apperrors "photostudio-backend/internal/errors"
	"photostudio-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Field   string `json:"field,omitempty" example:"end_time"`
	Details string `json:"details,omitempty"`
}

// respondError maps a service error onto its HTTP status. Unknown errors are
// reported as 500 with action as the message.
func respondError(c *gin.Context, err error, action string) {
	switch {
	case apperrors.IsValidation(err):
		resp := ErrorResponse{Error: err.Error()}
		if field := apperrors.ValidationField(err); field != "" {
			resp.Field = field
		}
		c.JSON(http.StatusBadRequest, resp)
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsInvalidTransition(err):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err), apperrors.IsAccessDenied(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		logger.FromGinContext(c).WithError(err).Error(action)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: action, Details: err.Error()})
	}
}

// requireCaller returns the authenticated caller or writes a 401
func requireCaller(c *gin.Context) (auth.Caller, bool) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return auth.Caller{}, false
	}
	return caller, true
}

// parseUUIDParam reads a UUID path parameter or writes a 400
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + label + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalUUIDQuery reads an optional UUID query parameter or writes a 400
func parseOptionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name + ": invalid UUID format"})
		return nil, false
	}
	return &id, true
}

// bindJSON binds the request body or writes a 400
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return false
	}
	return true
}
