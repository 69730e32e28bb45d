// api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"borapassageiro/api/config"
	"borapassageiro/api/database"
	"borapassageiro/api/handlers"
	"borapassageiro/api/middleware"
	"borapassageiro/api/services"
	"borapassageiro/api/store"
)

func main() {
	config.LoadConfig()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Initialize PostgreSQL (site content + integration credentials) ---
	dbClient, err := database.NewPostgresDB()
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL database: %v", err)
	}
	defer dbClient.Close()

	// --- Initialize ClickHouse (analytics events) ---
	chClient, err := database.NewClickHouseDB()
	if err != nil {
		log.Fatalf("Failed to initialize ClickHouse database: %v", err)
	}
	defer chClient.Close()

	// --- Initialize Stores ---
	analyticsStore := store.NewAnalyticsStore(chClient)
	contentStore := store.NewContentStore(dbClient.DB)
	integrationStore := store.NewIntegrationStore(dbClient.DB)

	// --- Initialize Services ---
	geoService := services.NewGeoService(config.AppConfig.GeoAPIBaseURL)
	dispatcher := services.NewDispatcher(
		integrationStore,
		services.NewFacebookService(),
		services.NewGoogleService(),
		services.NewTikTokService(),
	)
	defer dispatcher.Stop()

	// --- Initialize Handlers ---
	authHandlers := handlers.NewAuthHandlers()
	trackHandlers := handlers.NewTrackHandlers(analyticsStore, geoService, dispatcher)
	statsHandlers := handlers.NewStatsHandlers(analyticsStore, services.NewStatsService())
	contentHandlers := handlers.NewContentHandlers(contentStore)
	integrationHandlers := handlers.NewIntegrationHandlers(integrationStore)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(config.AppConfig.FrontendOrigin))

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "bora-passageiro-api"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandlers.Login)
		api.POST("/track", trackHandlers.TrackEvent)
		api.GET("/content/public", contentHandlers.GetPublicContent)

		protected := api.Group("/")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/stats", statsHandlers.GetStats)
			protected.GET("/content", contentHandlers.GetContent)
			protected.POST("/content", contentHandlers.UpsertContent)
			protected.DELETE("/content/:id", contentHandlers.DeleteContent)
			protected.GET("/integrations", integrationHandlers.GetIntegrations)
			protected.POST("/integrations", integrationHandlers.UpsertIntegration)
		}
	}

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Bora Passageiro API running on port %s", config.AppConfig.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("API server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Drain queued ad-platform dispatches before closing the stores.
	dispatcher.Stop()

	log.Println("Server exiting.")
}
