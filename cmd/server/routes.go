package main

import (
	"github.com/gin-gonic/gin"
	"github.com/habitat-caracas/habitat/backend/internal/config"
	"github.com/habitat-caracas/habitat/backend/internal/middleware"
	"github.com/habitat-caracas/habitat/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, cfg *config.Config, svc *appServices) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS(cfg.CORS.Origins))

	// Rate limiter for unauthenticated write endpoints
	publicWriteLimiter := middleware.NewRateLimiter(5, 10)

	r.GET("/health", svc.healthHandler.CheckHealth)

	// Uploaded files
	r.Static("/static/uploads", cfg.Upload.Dir)

	api := r.Group("/api")
	{
		// Auth (public)
		api.POST("/users/token", svc.authHandler.Login)

		// Properties: public reads with optional identity narrowing
		properties := api.Group("/properties", middleware.OptionalAuth())
		{
			properties.GET("", svc.propertyHandler.List)
			properties.GET("/:id", svc.propertyHandler.GetByID)
		}
		api.POST("/properties/:id/track-click", publicWriteLimiter.Middleware(), svc.propertyHandler.TrackClick)

		// Public contact submission
		api.POST("/contact", publicWriteLimiter.Middleware(), svc.contactHandler.Create)

		// Public site content
		api.GET("/team", svc.teamHandler.List)
		api.GET("/team/:id", svc.teamHandler.GetByID)
		api.GET("/settings", svc.settingsHandler.GetAll)

		// Staff-or-above
		protected := api.Group("", middleware.AuthRequired())
		{
			protected.GET("/users/me", svc.authHandler.GetCurrentUser)
			protected.GET("/contact", svc.contactHandler.List)
			protected.GET("/contact/:id", svc.contactHandler.GetByID)

			// Staff may create listings; they are assigned to themselves
			protected.POST("/properties", svc.propertyHandler.Create)
		}

		// Manager-or-above
		manager := api.Group("", middleware.AuthRequired(), middleware.ManagerRequired())
		{
			manager.PUT("/properties/:id", svc.propertyHandler.Update)
			manager.DELETE("/properties/:id", svc.propertyHandler.Delete)

			manager.PUT("/contact/:id", svc.contactHandler.Update)
			manager.DELETE("/contact/:id", svc.contactHandler.Delete)
			manager.GET("/contact/:id/pdf", svc.contactHandler.ExportPDF)
			manager.POST("/contact/:id/send-email", svc.contactHandler.SendEmail)

			manager.GET("/users", svc.userHandler.List)

			manager.POST("/uploads/:type", svc.uploadHandler.Upload)
		}

		// Admin only
		admin := api.Group("", middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.POST("/users", svc.userHandler.Create)
			admin.GET("/users/:id", svc.userHandler.GetByID)
			admin.PUT("/users/:id", svc.userHandler.Update)
			admin.DELETE("/users/:id", svc.userHandler.Delete)

			admin.POST("/team", svc.teamHandler.Create)
			admin.PUT("/team/:id", svc.teamHandler.Update)
			admin.DELETE("/team/:id", svc.teamHandler.Delete)

			admin.PUT("/settings", svc.settingsHandler.BulkUpdate)
		}
	}
}
