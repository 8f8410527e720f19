package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/habitat-caracas/habitat/backend/internal/services"
	"github.com/habitat-caracas/habitat/backend/pkg/response"
)

type SettingsHandler struct {
	settingService *services.SiteSettingService
}

func NewSettingsHandler(settingService *services.SiteSettingService) *SettingsHandler {
	return &SettingsHandler{settingService: settingService}
}

// GetAll returns every site setting keyed by its key
// GET /api/settings
func (h *SettingsHandler) GetAll(c *gin.Context) {
	settings, err := h.settingService.GetAll()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, settings)
}

// BulkUpdate upserts the posted settings and returns the full map
// PUT /api/settings
func (h *SettingsHandler) BulkUpdate(c *gin.Context) {
	var req map[string]services.SettingUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	settings, err := h.settingService.BulkUpdate(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, settings)
}
