package services

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/habitat-caracas/habitat/backend/internal/config"
)

func newUploadService(t *testing.T) *UploadService {
	t.Helper()
	return NewUploadService(&config.UploadConfig{
		Dir:     t.TempDir(),
		BaseURL: "http://localhost:8000",
	})
}

func TestUploadSave(t *testing.T) {
	svc := newUploadService(t)

	result, err := svc.Save("properties", "photo.jpg", strings.NewReader("fake image data"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	pattern := regexp.MustCompile(`^photo_[0-9a-f]{32}\.jpg$`)
	if !pattern.MatchString(result.Filename) {
		t.Errorf("stored name %q does not match expected pattern", result.Filename)
	}
	if result.URL != "http://localhost:8000/static/uploads/properties/"+result.Filename {
		t.Errorf("unexpected URL %q", result.URL)
	}

	data, err := os.ReadFile(filepath.Join(svc.cfg.Dir, "properties", result.Filename))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "fake image data" {
		t.Errorf("stored content mismatch: %q", data)
	}
}

func TestUploadSave_SanitizesName(t *testing.T) {
	svc := newUploadService(t)

	result, err := svc.Save("team", "mi fotó (1).png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if !strings.HasSuffix(result.Filename, ".png") {
		t.Errorf("extension lost: %q", result.Filename)
	}
	base := strings.TrimSuffix(result.Filename, ".png")
	if idx := strings.LastIndex(base, "_"); idx < 0 || len(base[idx+1:]) != 32 {
		t.Fatalf("missing hex suffix: %q", result.Filename)
	}
	sanitized := base[:strings.LastIndex(base, "_")]
	if ok, _ := regexp.MatchString(`^[A-Za-z0-9_.]+$`, sanitized); !ok {
		t.Errorf("sanitized base contains forbidden characters: %q", sanitized)
	}
}

func TestUploadSave_CollisionResistance(t *testing.T) {
	svc := newUploadService(t)

	a, err := svc.Save("general", "doc.pdf", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	b, err := svc.Save("general", "doc.pdf", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if a.Filename == b.Filename {
		t.Errorf("same source name produced colliding stored names: %q", a.Filename)
	}
}

func TestUploadSave_InvalidType(t *testing.T) {
	svc := newUploadService(t)

	if _, err := svc.Save("etc", "passwd", strings.NewReader("x")); err == nil {
		t.Error("expected error for invalid upload type")
	}
	if _, err := svc.Save("properties", "", strings.NewReader("x")); err == nil {
		t.Error("expected error for empty filename")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"photo", "photo"},
		{"my photo", "my_photo"},
		{"casa-en-venta!", "casa_en_venta_"},
		{"archivo.v2", "archivo.v2"},
		{"año", "a_o"},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.input); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, expected %q", tt.input, got, tt.want)
		}
	}
}
