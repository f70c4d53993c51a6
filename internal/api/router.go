package api

import (
	"context"
	"fmt"

	"github.com/Amanjha112113/ai-text-generator/internal/api/handlers"
	apimiddleware "github.com/Amanjha112113/ai-text-generator/internal/api/middleware"
	"github.com/Amanjha112113/ai-text-generator/internal/config"
	"github.com/Amanjha112113/ai-text-generator/internal/metrics"
	"github.com/Amanjha112113/ai-text-generator/internal/services"
	webhandlers "github.com/Amanjha112113/ai-text-generator/internal/web/handlers"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware, handlers and routes into a gin engine
func SetupRouter(ctx context.Context, cfg *config.Config, version string) (*gin.Engine, error) {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	cloudwatchClient, err := metrics.NewClient(ctx, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize CloudWatch metrics: %w", err)
	}

	// Health check
	healthHandler := handlers.NewHealthHandler(cfg)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Web pages
	webHandler := webhandlers.NewWebHandler()
	router.GET("/", webHandler.Home)

	// API routes v1
	v1 := router.Group("/api/v1")
	{
		generationService := services.NewGenerationService(cfg, cloudwatchClient)
		generationHandler := handlers.NewGenerationHandler(generationService)
		v1.POST("/generations", generationHandler.Generate)

		exportHandler := handlers.NewExportHandler(cloudwatchClient)
		v1.POST("/exports", exportHandler.Export)
	}

	return router, nil
}
