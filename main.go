package main

import (
	"os"

	"drboogie/config"
	"drboogie/handlers"
	"drboogie/middleware"
	"drboogie/models"
	"drboogie/routes"
	"drboogie/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("Failed to open database")
	}

	// Auto-migrate database models
	if err := db.AutoMigrate(&models.Score{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	// Initialize services
	scoreService := services.NewScoreService(db)

	// Initialize handlers
	scoreHandler := handlers.NewScoreHandler(scoreService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS and request-ID middleware
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	// Setup routes
	routes.SetupRoutes(router, scoreHandler, cfg.StaticDir)

	// Start server
	addr := cfg.BindAddress + ":" + cfg.Port
	log.Info().Str("addr", addr).Str("db", cfg.DBPath).Msg("Server starting")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
