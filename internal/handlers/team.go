package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/habitat-caracas/habitat/backend/internal/services"
	"github.com/habitat-caracas/habitat/backend/pkg/response"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// List returns team members in display order
// GET /api/team
func (h *TeamHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	members, err := h.teamService.List(offset, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, members)
}

// GetByID returns a team member by ID
// GET /api/team/:id
func (h *TeamHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid team member id")
		return
	}

	member, err := h.teamService.Get(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, member)
}

// Create creates a team member
// POST /api/team
func (h *TeamHandler) Create(c *gin.Context) {
	var req services.TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.teamService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, member)
}

// Update updates a team member
// PUT /api/team/:id
func (h *TeamHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid team member id")
		return
	}

	var req services.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.teamService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, member)
}

// Delete deletes a team member
// DELETE /api/team/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid team member id")
		return
	}

	if err := h.teamService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
