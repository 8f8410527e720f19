package main

import (
	"github.com/habitat-caracas/habitat/backend/internal/config"
	"github.com/habitat-caracas/habitat/backend/internal/handlers"
	"github.com/habitat-caracas/habitat/backend/internal/models"
	"github.com/habitat-caracas/habitat/backend/internal/services"
	"github.com/habitat-caracas/habitat/backend/internal/utils"
	"github.com/habitat-caracas/habitat/backend/pkg/logger"
)

// appServices holds the initialized services and handlers the router needs.
type appServices struct {
	cleanupService  *services.CleanupService
	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	propertyHandler *handlers.PropertyHandler
	contactHandler  *handlers.ContactHandler
	teamHandler     *handlers.TeamHandler
	settingsHandler *handlers.SettingsHandler
	uploadHandler   *handlers.UploadHandler
	healthHandler   *handlers.HealthHandler
}

// bootstrap initializes database, seed data, services and schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()

	if err := models.SeedDefaultSettings(db); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default settings")
	}

	authService := services.NewAuthService(db, &cfg.JWT)
	if err := authService.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	settingService := services.NewSiteSettingService(db)
	emailService := services.NewEmailService(&cfg.SMTP)
	contactService := services.NewContactService(db, settingService, emailService)

	cleanupService := services.NewCleanupService(db, &cfg.Cleanup)
	if err := cleanupService.StartScheduler(); err != nil {
		logger.Warn().Err(err).Msg("Failed to start cleanup scheduler")
	}

	return &appServices{
		cleanupService:  cleanupService,
		authHandler:     handlers.NewAuthHandler(authService),
		userHandler:     handlers.NewUserHandler(services.NewUserService(db)),
		propertyHandler: handlers.NewPropertyHandler(services.NewPropertyService(db)),
		contactHandler:  handlers.NewContactHandler(contactService, authService),
		teamHandler:     handlers.NewTeamHandler(services.NewTeamService(db)),
		settingsHandler: handlers.NewSettingsHandler(settingService),
		uploadHandler:   handlers.NewUploadHandler(services.NewUploadService(&cfg.Upload)),
		healthHandler:   handlers.NewHealthHandler(),
	}
}

// shutdown stops background schedulers.
func (s *appServices) shutdown() {
	s.cleanupService.StopScheduler()
	logger.Info().Msg("All schedulers stopped")
}
