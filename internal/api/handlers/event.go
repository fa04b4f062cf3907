package handlers

import (
	"net/http"

	"photostudio-backend/internal/database/models"
	"photostudio-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler handles HTTP requests for events and their lifecycle
type EventHandler struct {
	service service.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(service service.EventServiceInterface) *EventHandler {
	return &EventHandler{service: service}
}

// CreateEvent handles POST /api/v1/events
// @Summary Book a new event
// @Description Events start in the upcoming state
// @Tags events
// @Accept json
// @Produce json
// @Param event body service.CreateEventRequest true "Event data"
// @Success 201 {object} service.EventResponse "Successfully created event"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Studio owner only"
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req service.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.service.CreateEvent(caller, &req)
	if err != nil {
		respondError(c, err, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, event)
}

// ListEvents handles GET /api/v1/events
// @Summary List events
// @Description Team members only see events they are assigned to
// @Tags events
// @Produce json
// @Param status query string false "Filter by status" Enums(upcoming, ongoing, completed, cancelled)
// @Param from query string false "Earliest date (YYYY-MM-DD)"
// @Param to query string false "Latest date (YYYY-MM-DD)"
// @Success 200 {array} service.EventResponse "Successfully retrieved events"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	filter := &service.EventFilter{
		From: c.Query("from"),
		To:   c.Query("to"),
	}
	if status := c.Query("status"); status != "" {
		s := models.EventStatus(status)
		filter.Status = &s
	}

	events, err := h.service.ListEvents(caller, filter)
	if err != nil {
		respondError(c, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /api/v1/events/:id
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} service.EventResponse "Successfully retrieved event"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	event, err := h.service.GetEvent(caller, id)
	if err != nil {
		respondError(c, err, "Failed to get event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// UpdateEvent handles PUT /api/v1/events/:id
// @Summary Update event details
// @Description Allowed in any status. Use the transition endpoint to change status.
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param event body service.UpdateEventRequest true "Fields to change"
// @Success 200 {object} service.EventResponse "Successfully updated event"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	var req service.UpdateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.service.UpdateEvent(caller, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// TransitionEvent handles POST /api/v1/events/:id/transition
// @Summary Change an event's status
// @Description upcoming -> ongoing -> completed; upcoming or ongoing -> cancelled
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param transition body service.TransitionRequest true "Target status"
// @Success 200 {object} service.EventResponse "Successfully changed status"
// @Failure 400 {object} ErrorResponse "Unknown status"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 422 {object} ErrorResponse "Illegal transition"
// @Security BearerAuth
// @Router /events/{id}/transition [post]
func (h *EventHandler) TransitionEvent(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	var req service.TransitionRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.service.Transition(caller, id, req.Status)
	if err != nil {
		respondError(c, err, "Failed to change event status")
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/v1/events/:id
// @Summary Delete an event
// @Description Removes ceremonies, assignments and photos of the event. Galleries are kept.
// @Tags events
// @Param id path string true "Event ID (UUID)"
// @Success 204 "Event deleted"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Cascade failed and was rolled back"
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	if err := h.service.DeleteEvent(caller, id); err != nil {
		respondError(c, err, "Failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}
