package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/habitat-caracas/habitat/backend/internal/middleware"
	"github.com/habitat-caracas/habitat/backend/internal/services"
	"github.com/habitat-caracas/habitat/backend/pkg/response"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// List returns properties visible to the caller with optional filters
// GET /api/properties
func (h *PropertyHandler) List(c *gin.Context) {
	var req services.PropertyListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	properties, err := h.propertyService.List(&req, middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, properties)
}

// GetByID returns a property by ID
// GET /api/properties/:id
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid property id")
		return
	}

	property, err := h.propertyService.Get(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, property)
}

// Create creates a new property
// POST /api/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var req services.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	property, err := h.propertyService.Create(&req, middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, property)
}

// Update updates a property and reconciles its image gallery
// PUT /api/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid property id")
		return
	}

	var req services.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	property, err := h.propertyService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, property)
}

// Delete deletes a property with its gallery images
// DELETE /api/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid property id")
		return
	}

	if err := h.propertyService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// TrackClick records a public view of a property
// POST /api/properties/:id/track-click
func (h *PropertyHandler) TrackClick(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid property id")
		return
	}

	if err := h.propertyService.TrackClick(uint(id), c.ClientIP(), c.Request.UserAgent()); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"tracked": true})
}
