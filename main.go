package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/allometrik/clm-platform-sub000/config"
	"github.com/allometrik/clm-platform-sub000/handler"
	"github.com/allometrik/clm-platform-sub000/middleware"
	"github.com/allometrik/clm-platform-sub000/pkg/logger"
	"github.com/allometrik/clm-platform-sub000/service"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Initialize the entity store with the seed dataset
	service.InitStore(&cfg.Store)
	store := service.GetStore()
	resolver := service.NewResolver(store)

	// Document export is optional; without an endpoint the export
	// route answers 503.
	var exportSvc *service.ExportService
	if cfg.Export.Endpoint != "" {
		exportSvc, err = service.NewExportService(&cfg.Export)
		if err != nil {
			slog.Error("failed to initialize export service", "error", err)
			os.Exit(1)
		}
		if err := exportSvc.EnsureBucket(context.Background()); err != nil {
			slog.Error("failed to ensure export bucket", "error", err)
			os.Exit(1)
		}
	}

	assistantSvc := service.NewAssistantService(&cfg.Assistant)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(cfg)
	clauseHandler := handler.NewClauseHandler(store, resolver)
	templateHandler := handler.NewTemplateHandler(store, resolver)
	contractHandler := handler.NewContractHandler(store, resolver, exportSvc)
	approvalHandler := handler.NewApprovalHandler(store)
	requestHandler := handler.NewRequestHandler(store)
	redlineHandler := handler.NewRedlineHandler(store)
	assistantHandler := handler.NewAssistantHandler(assistantSvc, store)
	playbookHandler := handler.NewPlaybookHandler(store)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())                 // Request ID for tracing
	router.Use(middleware.Recovery())                  // Panic recovery
	router.Use(middleware.RequestLogger())             // Access logging
	router.Use(corsMiddleware())                       // CORS
	router.Use(middleware.RateLimit(100, time.Minute)) // Rate limiting: 100 requests per minute

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)

		protected.GET("/clauses", clauseHandler.List)
		protected.POST("/clauses", clauseHandler.Create)
		protected.GET("/clauses/:id", clauseHandler.Get)
		protected.PUT("/clauses/:id", clauseHandler.Update)
		protected.DELETE("/clauses/:id", clauseHandler.Delete)
		protected.GET("/clauses/:id/versions", clauseHandler.Versions)
		protected.GET("/clauses/:id/versions/compare", clauseHandler.CompareVersions)
		protected.GET("/clauses/:id/usage", clauseHandler.Usage)

		protected.GET("/templates", templateHandler.List)
		protected.POST("/templates", templateHandler.Create)
		protected.GET("/templates/:id", templateHandler.Get)
		protected.PUT("/templates/:id", templateHandler.Update)
		protected.DELETE("/templates/:id", templateHandler.Delete)
		protected.GET("/templates/:id/clauses", templateHandler.Clauses)

		protected.GET("/contracts", contractHandler.List)
		protected.POST("/contracts", contractHandler.Create)
		protected.GET("/contracts/:id", contractHandler.Get)
		protected.PUT("/contracts/:id/status", contractHandler.UpdateStatus)
		protected.GET("/contracts/:id/versions", contractHandler.Versions)
		protected.POST("/contracts/:id/versions", contractHandler.AddVersion)
		protected.GET("/contracts/:id/clauses", contractHandler.Clauses)
		protected.GET("/contracts/:id/risk", contractHandler.Risk)
		protected.GET("/contracts/:id/approval", approvalHandler.ForContract)
		protected.POST("/contracts/:id/export", contractHandler.Export)

		protected.GET("/approvals", approvalHandler.List)
		protected.GET("/approvals/:id", approvalHandler.Get)
		protected.POST("/approvals/:id/steps/:step", approvalHandler.Decide)

		protected.GET("/redlines", redlineHandler.List)
		protected.POST("/redlines/:id/accept", redlineHandler.Accept)
		protected.POST("/redlines/:id/reject", redlineHandler.Reject)

		protected.GET("/requests", requestHandler.List)
		protected.POST("/requests", requestHandler.Create)
		protected.GET("/requests/:id", requestHandler.Get)
		protected.PUT("/requests/:id/status", requestHandler.UpdateStatus)

		protected.GET("/playbooks", playbookHandler.List)

		protected.POST("/assistant/generate", assistantHandler.Generate)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
