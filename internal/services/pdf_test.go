package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/habitat-caracas/habitat/backend/internal/models"
)

func TestRenderContactPDF(t *testing.T) {
	contact := &models.Contact{
		ID:          12,
		Name:        "Ana García",
		Email:       "ana@example.com",
		Phone:       "+58 212 555 0101",
		Subject:     "Apartment inquiry",
		Message:     "First line.\nSecond line.",
		SubmittedAt: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}

	data, err := RenderContactPDF(contact)
	if err != nil {
		t.Fatalf("RenderContactPDF() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with PDF magic, got %q", data[:8])
	}
	if len(data) < 500 {
		t.Errorf("suspiciously small PDF: %d bytes", len(data))
	}
}

func TestRenderContactPDF_EmptyPhone(t *testing.T) {
	contact := &models.Contact{
		ID:          1,
		Name:        "B",
		Email:       "b@example.com",
		Message:     "m",
		SubmittedAt: time.Now(),
	}

	if _, err := RenderContactPDF(contact); err != nil {
		t.Fatalf("RenderContactPDF() error: %v", err)
	}
}
