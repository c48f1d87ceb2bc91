package main

import (
	"github.com/Moetaz101/project-pal/internal/middleware"
	"github.com/Moetaz101/project-pal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices, loginLimiter gin.HandlerFunc) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "project-pal"})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", loginLimiter)
		{
			auth.POST("/login", svc.authHandler.Login)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(), middleware.ActivityLog(svc.activityService))
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/logout", svc.authHandler.Logout)

			// Dashboard
			protected.GET("/dashboard/stats", svc.dashboardHandler.GetStats)

			// Projects
			protected.GET("/projects", svc.projectHandler.List)
			protected.GET("/projects/:id", svc.projectHandler.GetByID)
			protected.POST("/projects", svc.projectHandler.Create)
			protected.PUT("/projects/:id", svc.projectHandler.Update)
			protected.DELETE("/projects/:id", svc.projectHandler.Delete)

			// Tasks
			protected.GET("/tasks", svc.taskHandler.List)
			protected.GET("/tasks/:id", svc.taskHandler.GetByID)
			protected.POST("/tasks", svc.taskHandler.Create)
			protected.PUT("/tasks/:id", svc.taskHandler.Update)
			protected.DELETE("/tasks/:id", svc.taskHandler.Delete)

			// Members
			protected.GET("/members", svc.memberHandler.List)
			protected.GET("/members/:id", svc.memberHandler.GetByID)
			protected.GET("/members/:id/stats", svc.memberHandler.GetStats)
			protected.POST("/members", svc.memberHandler.Create)
			protected.PUT("/members/:id", svc.memberHandler.Update)
			protected.DELETE("/members/:id", svc.memberHandler.Delete)

			// Comments
			protected.GET("/comments", svc.commentHandler.List)
			protected.GET("/comments/:id", svc.commentHandler.GetByID)
			protected.POST("/comments", svc.commentHandler.Create)
			protected.PUT("/comments/:id", svc.commentHandler.Update)
			protected.DELETE("/comments/:id", svc.commentHandler.Delete)

			// Notifications (scoped to the acting member)
			protected.GET("/notifications", svc.notificationHandler.List)
			protected.POST("/notifications", svc.notificationHandler.Create)
			protected.POST("/notifications/read-all", svc.notificationHandler.MarkAllRead)
			protected.PUT("/notifications/:id/read", svc.notificationHandler.MarkRead)
			protected.DELETE("/notifications/:id", svc.notificationHandler.Delete)

			// Activity feed
			protected.GET("/activities", svc.activityHandler.List)
		}
	}
}
