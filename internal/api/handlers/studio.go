package handlers

import (
	"net/http"

	"photostudio-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StudioHandler handles HTTP requests for the caller's studio
type StudioHandler struct {
	service service.StudioServiceInterface
}

// NewStudioHandler creates a new studio handler
func NewStudioHandler(service service.StudioServiceInterface) *StudioHandler {
	return &StudioHandler{service: service}
}

// GetStudio handles GET /api/v1/studio
// @Summary Get the caller's studio
// @Tags studio
// @Produce json
// @Success 200 {object} service.StudioResponse "Successfully retrieved studio"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Studio not found"
// @Security BearerAuth
// @Router /studio [get]
func (h *StudioHandler) GetStudio(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	studio, err := h.service.GetStudio(caller, caller.StudioID)
	if err != nil {
		respondError(c, err, "Failed to get studio")
		return
	}
	c.JSON(http.StatusOK, studio)
}

// UpdateStudio handles PUT /api/v1/studio
// @Summary Update the caller's studio
// @Tags studio
// @Accept json
// @Produce json
// @Param studio body service.UpdateStudioRequest true "Studio fields to change"
// @Success 200 {object} service.StudioResponse "Successfully updated studio"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Studio owner only"
// @Security BearerAuth
// @Router /studio [put]
func (h *StudioHandler) UpdateStudio(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req service.UpdateStudioRequest
	if !bindJSON(c, &req) {
		return
	}

	studio, err := h.service.UpdateStudio(caller, caller.StudioID, &req)
	if err != nil {
		respondError(c, err, "Failed to update studio")
		return
	}
	c.JSON(http.StatusOK, studio)
}

// DeleteStudio handles DELETE /api/v1/studio
// @Summary Delete the caller's studio and everything it owns
// @Tags studio
// @Success 204 "Studio deleted"
// @Failure 403 {object} ErrorResponse "Studio owner only"
// @Failure 500 {object} ErrorResponse "Cascade failed and was rolled back"
// @Security BearerAuth
// @Router /studio [delete]
func (h *StudioHandler) DeleteStudio(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	if err := h.service.DeleteStudio(caller, caller.StudioID); err != nil {
		respondError(c, err, "Failed to delete studio")
		return
	}
	c.Status(http.StatusNoContent)
}
