package main

import (
	"os"

	"github.com/Moetaz101/project-pal/internal/config"
	"github.com/Moetaz101/project-pal/internal/middleware"
	"github.com/Moetaz101/project-pal/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level)

	// Initialize store, services, handlers and the reminder scheduler
	svc := bootstrap(cfg)
	defer svc.shutdown()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Create router
	r := gin.New()

	loginLimiter := middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	registerRoutes(r, svc, loginLimiter)

	// Start server
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
