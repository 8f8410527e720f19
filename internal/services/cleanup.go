package services

import (
	"time"

	"github.com/habitat-caracas/habitat/backend/internal/config"
	"github.com/habitat-caracas/habitat/backend/internal/models"
	"github.com/habitat-caracas/habitat/backend/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type CleanupService struct {
	db        *gorm.DB
	cfg       *config.CleanupConfig
	scheduler *cron.Cron
}

func NewCleanupService(db *gorm.DB, cfg *config.CleanupConfig) *CleanupService {
	return &CleanupService{db: db, cfg: cfg}
}

// StartScheduler begins the periodic purge of aged click records. With no
// retention configured the click log is kept forever and no job runs.
func (s *CleanupService) StartScheduler() error {
	if s.cfg.ClickRetentionDays <= 0 {
		logger.Info().Msg("[Cleanup] Click retention disabled, scheduler not started")
		return nil
	}

	s.scheduler = cron.New()
	if _, err := s.scheduler.AddFunc(s.cfg.Schedule, func() {
		if deleted, err := s.PurgeOldClicks(); err != nil {
			logger.Errorf("[Cleanup] Click purge failed: %v", err)
		} else if deleted > 0 {
			logger.Infof("[Cleanup] Purged %d aged click records", deleted)
		}
	}); err != nil {
		return err
	}

	s.scheduler.Start()
	logger.Infof("[Cleanup] Scheduler started (%s, retention %d days)",
		s.cfg.Schedule, s.cfg.ClickRetentionDays)
	return nil
}

func (s *CleanupService) StopScheduler() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// PurgeOldClicks deletes click records older than the retention window.
func (s *CleanupService) PurgeOldClicks() (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -s.cfg.ClickRetentionDays)
	result := s.db.Where("clicked_at < ?", cutoff).Delete(&models.PropertyClick{})
	return result.RowsAffected, result.Error
}
