package services

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/habitat-caracas/habitat/backend/internal/config"
	"github.com/habitat-caracas/habitat/backend/pkg/response"
)

var allowedUploadTypes = map[string]bool{
	"properties": true,
	"team":       true,
	"general":    true,
}

type UploadService struct {
	cfg *config.UploadConfig
}

func NewUploadService(cfg *config.UploadConfig) *UploadService {
	return &UploadService{cfg: cfg}
}

type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Save streams an uploaded file to disk under the type's subdirectory.
// The stored name is the sanitized base name plus a random hex suffix,
// keeping the original extension.
func (s *UploadService) Save(uploadType, originalName string, src io.Reader) (*UploadResult, error) {
	if !allowedUploadTypes[uploadType] {
		return nil, response.NewBadRequest("invalid upload type")
	}
	if originalName == "" {
		return nil, response.NewBadRequest("filename is required")
	}

	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	filename := sanitizeFilename(base) + "_" + suffix + ext

	dir := filepath.Join(s.cfg.Dir, uploadType)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, response.NewServerError("failed to prepare upload directory")
	}

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return nil, response.NewServerError("failed to store file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, response.NewServerError("failed to store file")
	}

	return &UploadResult{
		Filename: filename,
		URL:      s.cfg.BaseURL + "/static/uploads/" + uploadType + "/" + filename,
	}, nil
}

// sanitizeFilename keeps letters, digits, underscores and dots; anything
// else becomes an underscore.
func sanitizeFilename(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
