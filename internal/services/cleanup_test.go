package services

import (
	"testing"
	"time"

	"github.com/habitat-caracas/habitat/backend/internal/config"
	"github.com/habitat-caracas/habitat/backend/internal/models"
)

func TestPurgeOldClicks(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCleanupService(db, &config.CleanupConfig{ClickRetentionDays: 30})

	db.Create(&models.PropertyClick{PropertyID: 1, ClickedAt: time.Now().AddDate(0, 0, -60)})
	db.Create(&models.PropertyClick{PropertyID: 1, ClickedAt: time.Now().AddDate(0, 0, -31)})
	db.Create(&models.PropertyClick{PropertyID: 1, ClickedAt: time.Now()})

	deleted, err := svc.PurgeOldClicks()
	if err != nil {
		t.Fatalf("PurgeOldClicks() error: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 purged clicks, got %d", deleted)
	}

	var remaining int64
	db.Model(&models.PropertyClick{}).Count(&remaining)
	if remaining != 1 {
		t.Errorf("expected 1 surviving click, got %d", remaining)
	}
}

func TestStartScheduler_DisabledRetention(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCleanupService(db, &config.CleanupConfig{ClickRetentionDays: 0, Schedule: "0 3 * * *"})

	if err := svc.StartScheduler(); err != nil {
		t.Fatalf("StartScheduler() error: %v", err)
	}
	if svc.scheduler != nil {
		t.Error("scheduler must not start with retention disabled")
	}
}

func TestStartScheduler_Enabled(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCleanupService(db, &config.CleanupConfig{ClickRetentionDays: 7, Schedule: "0 3 * * *"})

	if err := svc.StartScheduler(); err != nil {
		t.Fatalf("StartScheduler() error: %v", err)
	}
	defer svc.StopScheduler()

	if svc.scheduler == nil {
		t.Fatal("scheduler not started")
	}
}
