package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"movie-app/internal/config"
	"movie-app/pkg/logger"
)

func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	// .env is optional; real deployments use the process environment
	envErr := godotenv.Load()

	// ========================================
	// CONFIG + LOGGER
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		logger.Init("development", "info")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	if envErr != nil {
		log.Debug().Msg("No .env file found, using system environment variables")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().Str("environment", cfg.App.Environment).Msg("Starting movie app")

	// ========================================
	// START SERVER
	// ========================================
	if err := Serve(cfg); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
}
