package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/habitat-caracas/habitat/backend/internal/services"
	"github.com/habitat-caracas/habitat/backend/pkg/logger"
	"github.com/habitat-caracas/habitat/backend/pkg/response"
)

type UploadHandler struct {
	uploadService *services.UploadService
}

func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload stores a multipart file under the requested upload type
// POST /api/uploads/:type
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.ServerError(c, "failed to read upload")
		return
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warnf("[Upload] Failed to close upload stream: %v", err)
		}
	}()

	result, err := h.uploadService.Save(c.Param("type"), fileHeader.Filename, src)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}
