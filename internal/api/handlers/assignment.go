package handlers

import (
	"net/http"

	"photostudio-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for team assignments
type AssignmentHandler struct {
	service service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// Assign handles POST /api/v1/events/:id/assignments
// @Summary Assign a team member to an event or one of its ceremonies
// @Description Omit ceremony_id to cover the whole event
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param assignment body service.AssignRequest true "Assignment data"
// @Success 201 {object} service.AssignmentResponse "Successfully assigned"
// @Failure 400 {object} ErrorResponse "Inactive member or ceremony of another event"
// @Failure 404 {object} ErrorResponse "Event or team member not found"
// @Failure 409 {object} ErrorResponse "Already assigned to this scope"
// @Security BearerAuth
// @Router /events/{id}/assignments [post]
func (h *AssignmentHandler) Assign(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	var req service.AssignRequest
	if !bindJSON(c, &req) {
		return
	}

	assignment, err := h.service.Assign(caller, eventID, &req)
	if err != nil {
		respondError(c, err, "Failed to assign team member")
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// ListForScope handles GET /api/v1/events/:id/assignments
// @Summary List an event's assignments
// @Description With ceremony_id, returns that ceremony's assignments plus every whole-event assignment
// @Tags assignments
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param ceremony_id query string false "Ceremony ID (UUID)"
// @Success 200 {array} service.AssignmentResponse "Successfully retrieved assignments"
// @Failure 404 {object} ErrorResponse "Event or ceremony not found"
// @Security BearerAuth
// @Router /events/{id}/assignments [get]
func (h *AssignmentHandler) ListForScope(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}
	ceremonyID, ok := parseOptionalUUIDQuery(c, "ceremony_id")
	if !ok {
		return
	}

	assignments, err := h.service.ListForScope(caller, eventID, ceremonyID)
	if err != nil {
		respondError(c, err, "Failed to list assignments")
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// ListForMember handles GET /api/v1/team-members/:id/assignments
// @Summary List a team member's assignments
// @Tags assignments
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Success 200 {array} service.AssignmentResponse "Successfully retrieved assignments"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Security BearerAuth
// @Router /team-members/{id}/assignments [get]
func (h *AssignmentHandler) ListForMember(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	memberID, ok := parseUUIDParam(c, "id", "team member")
	if !ok {
		return
	}

	assignments, err := h.service.ListForMember(caller, memberID)
	if err != nil {
		respondError(c, err, "Failed to list assignments")
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// Unassign handles DELETE /api/v1/assignments/:id
// @Summary Remove an assignment
// @Description Removing an assignment that does not exist succeeds
// @Tags assignments
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Assignment removed"
// @Security BearerAuth
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) Unassign(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "assignment")
	if !ok {
		return
	}

	if err := h.service.Unassign(caller, id); err != nil {
		respondError(c, err, "Failed to remove assignment")
		return
	}
	c.Status(http.StatusNoContent)
}
