package handlers

import (
	"net/http"

	"photostudio-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CeremonyHandler handles HTTP requests for an event's ceremony schedule
type CeremonyHandler struct {
	service service.CeremonyServiceInterface
}

// NewCeremonyHandler creates a new ceremony handler
func NewCeremonyHandler(service service.CeremonyServiceInterface) *CeremonyHandler {
	return &CeremonyHandler{service: service}
}

// ListCeremonies handles GET /api/v1/events/:id/ceremonies
// @Summary List an event's ceremonies in order
// @Tags ceremonies
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {array} service.CeremonyResponse "Successfully retrieved ceremonies"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id}/ceremonies [get]
func (h *CeremonyHandler) ListCeremonies(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	ceremonies, err := h.service.ListCeremonies(caller, eventID)
	if err != nil {
		respondError(c, err, "Failed to list ceremonies")
		return
	}
	c.JSON(http.StatusOK, ceremonies)
}

// AddCeremony handles POST /api/v1/events/:id/ceremonies
// @Summary Append a ceremony to an event
// @Tags ceremonies
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param ceremony body service.CreateCeremonyRequest true "Ceremony data"
// @Success 201 {object} service.CeremonyResponse "Successfully added ceremony"
// @Failure 400 {object} ErrorResponse "Invalid request body or event closed for scheduling"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id}/ceremonies [post]
func (h *CeremonyHandler) AddCeremony(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	var req service.CreateCeremonyRequest
	if !bindJSON(c, &req) {
		return
	}

	ceremony, err := h.service.AddCeremony(caller, eventID, &req)
	if err != nil {
		respondError(c, err, "Failed to add ceremony")
		return
	}
	c.JSON(http.StatusCreated, ceremony)
}

// ReorderCeremonies handles PUT /api/v1/events/:id/ceremonies/order
// @Summary Reorder an event's ceremonies
// @Description The list must hold every ceremony of the event exactly once
// @Tags ceremonies
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param order body service.ReorderCeremoniesRequest true "Ceremony IDs in their new order"
// @Success 200 {array} service.CeremonyResponse "Ceremonies in their new order"
// @Failure 400 {object} ErrorResponse "IDs do not match the event's ceremonies"
// @Security BearerAuth
// @Router /events/{id}/ceremonies/order [put]
func (h *CeremonyHandler) ReorderCeremonies(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	var req service.ReorderCeremoniesRequest
	if !bindJSON(c, &req) {
		return
	}

	ceremonies, err := h.service.Reorder(caller, eventID, req.CeremonyIDs)
	if err != nil {
		respondError(c, err, "Failed to reorder ceremonies")
		return
	}
	c.JSON(http.StatusOK, ceremonies)
}

// UpdateCeremony handles PUT /api/v1/ceremonies/:id
// @Summary Update a ceremony
// @Tags ceremonies
// @Accept json
// @Produce json
// @Param id path string true "Ceremony ID (UUID)"
// @Param ceremony body service.UpdateCeremonyRequest true "Fields to change"
// @Success 200 {object} service.CeremonyResponse "Successfully updated ceremony"
// @Failure 400 {object} ErrorResponse "Invalid time window"
// @Failure 404 {object} ErrorResponse "Ceremony not found"
// @Security BearerAuth
// @Router /ceremonies/{id} [put]
func (h *CeremonyHandler) UpdateCeremony(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "ceremony")
	if !ok {
		return
	}

	var req service.UpdateCeremonyRequest
	if !bindJSON(c, &req) {
		return
	}

	ceremony, err := h.service.UpdateCeremony(caller, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update ceremony")
		return
	}
	c.JSON(http.StatusOK, ceremony)
}

// RemoveCeremony handles DELETE /api/v1/ceremonies/:id
// @Summary Remove a ceremony
// @Description Removes the ceremony's own assignments and closes the gap in the order
// @Tags ceremonies
// @Param id path string true "Ceremony ID (UUID)"
// @Success 204 "Ceremony removed"
// @Failure 404 {object} ErrorResponse "Ceremony not found"
// @Security BearerAuth
// @Router /ceremonies/{id} [delete]
func (h *CeremonyHandler) RemoveCeremony(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "ceremony")
	if !ok {
		return
	}

	if err := h.service.RemoveCeremony(caller, id); err != nil {
		respondError(c, err, "Failed to remove ceremony")
		return
	}
	c.Status(http.StatusNoContent)
}
