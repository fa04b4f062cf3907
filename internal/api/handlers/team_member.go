package handlers

import (
	"net/http"
	"strconv"

	"photostudio-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamMemberHandler handles HTTP requests for team members
type TeamMemberHandler struct {
	service service.TeamMemberServiceInterface
}

// NewTeamMemberHandler creates a new team member handler
func NewTeamMemberHandler(service service.TeamMemberServiceInterface) *TeamMemberHandler {
	return &TeamMemberHandler{service: service}
}

// CreateTeamMember handles POST /api/v1/team-members
// @Summary Add a team member to the studio
// @Tags team-members
// @Accept json
// @Produce json
// @Param member body service.CreateTeamMemberRequest true "Team member data"
// @Success 201 {object} service.TeamMemberResponse "Successfully created team member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already used in the studio"
// @Security BearerAuth
// @Router /team-members [post]
func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req service.CreateTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.service.CreateTeamMember(caller, &req)
	if err != nil {
		respondError(c, err, "Failed to create team member")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// ListTeamMembers handles GET /api/v1/team-members
// @Summary List the studio's team members
// @Tags team-members
// @Produce json
// @Param active query bool false "Only active members"
// @Success 200 {array} service.TeamMemberResponse "Successfully retrieved team members"
// @Security BearerAuth
// @Router /team-members [get]
func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))
	members, err := h.service.ListTeamMembers(caller, activeOnly)
	if err != nil {
		respondError(c, err, "Failed to list team members")
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetTeamMember handles GET /api/v1/team-members/:id
// @Summary Get a team member
// @Tags team-members
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Success 200 {object} service.TeamMemberResponse "Successfully retrieved team member"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Security BearerAuth
// @Router /team-members/{id} [get]
func (h *TeamMemberHandler) GetTeamMember(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "team member")
	if !ok {
		return
	}

	member, err := h.service.GetTeamMember(caller, id)
	if err != nil {
		respondError(c, err, "Failed to get team member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// UpdateTeamMember handles PUT /api/v1/team-members/:id
// @Summary Update a team member
// @Description Deactivating a member blocks new assignments and keeps existing ones
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Param member body service.UpdateTeamMemberRequest true "Fields to change"
// @Success 200 {object} service.TeamMemberResponse "Successfully updated team member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Security BearerAuth
// @Router /team-members/{id} [put]
func (h *TeamMemberHandler) UpdateTeamMember(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "team member")
	if !ok {
		return
	}

	var req service.UpdateTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.service.UpdateTeamMember(caller, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update team member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteTeamMember handles DELETE /api/v1/team-members/:id
// @Summary Delete a team member and their assignments
// @Tags team-members
// @Param id path string true "Team member ID (UUID)"
// @Success 204 "Team member deleted"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Security BearerAuth
// @Router /team-members/{id} [delete]
func (h *TeamMemberHandler) DeleteTeamMember(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "team member")
	if !ok {
		return
	}

	if err := h.service.DeleteTeamMember(caller, id); err != nil {
		respondError(c, err, "Failed to delete team member")
		return
	}
	c.Status(http.StatusNoContent)
}
