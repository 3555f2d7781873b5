// File: venuepilot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"venuepilot/config"
	"venuepilot/handlers"
	"venuepilot/middleware"
	"venuepilot/routes"
	ai "venuepilot/services/intelligence"
	"venuepilot/services/resolution"
	"venuepilot/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// Text generation backend.
	generator, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	aiTimeout := time.Duration(config.ResolutionTimeout()) * time.Second
	placeholders := resolution.PlaceholderConfig{
		EventType:    config.AppConfig.PlaceholderEventType,
		ContactName:  config.AppConfig.PlaceholderContactName,
		ContactEmail: config.AppConfig.PlaceholderContactEmail,
		LeadDays:     config.AppConfig.PlaceholderLeadDays,
		StartTime:    config.AppConfig.PlaceholderStartTime,
		EndTime:      config.AppConfig.PlaceholderEndTime,
		Attendees:    config.AppConfig.PlaceholderAttendees,
	}

	resolutionService := &resolution.DefaultResolutionService{
		Extractor: &resolution.IntentExtractor{
			Generator:    generator,
			Timeout:      aiTimeout,
			Placeholders: placeholders,
		},
		Alternatives: &resolution.AlternativeSlotGenerator{
			Generator: generator,
			Timeout:   aiTimeout,
		},
		Composer: &resolution.ResponseComposer{
			Generator: generator,
			Timeout:   aiTimeout,
		},
	}

	resolutionHandler := handlers.NewResolutionHandler(resolutionService, logger)
	routes.RegisterRoutes(router, resolutionHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
