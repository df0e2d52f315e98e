// Command migrate creates the movies table when it does not exist.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"movie-app/internal/config"
	"movie-app/internal/infrastructure/database"
	"movie-app/pkg/logger"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("development", "info")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	if envErr != nil {
		log.Debug().Msg("No .env file found, using system environment variables")
	}

	if err := run(cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}

func run(url string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.OpenSQL(ctx, url)
	if err != nil {
		return err
	}
	defer db.Close()

	return database.ApplySchema(ctx, db)
}
