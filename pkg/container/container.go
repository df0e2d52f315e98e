package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"movie-app/internal/config"
	"movie-app/internal/domains/movie"
	movieHandler "movie-app/internal/domains/movie/handler"
	movieRepo "movie-app/internal/domains/movie/repository"
	movieService "movie-app/internal/domains/movie/service"
	"movie-app/internal/infrastructure/database"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the explicit application context: it owns the connection
// pool and hands it to the layers that need it. There is no package level
// state anywhere else.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.PostgresDB

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	MovieRepo movie.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================
	MovieService movie.Service

	// ========================================
	// HANDLER LAYER
	// ========================================
	MovieHandler *movieHandler.MovieHandler
	APIHandler   *movieHandler.APIHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the dependency graph in order:
// database → repositories → services → handlers.
//
// A database that is unreachable at startup is logged, not fatal: the pool
// keeps retrying lazily and the list page answers 500 meanwhile.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Msg("Initializing DI container...")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	db := database.NewPostgresDB(dbConfigFrom(cfg))

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.WaitReady(ctx); err != nil {
		log.Warn().Err(err).Msg("Database not reachable yet, serving anyway")
	}

	c.DB = db

	// ========================================
	// STEP 2: REPOSITORIES
	// ========================================
	c.initRepositories()

	// ========================================
	// STEP 3: SERVICES
	// ========================================
	c.initServices()

	// ========================================
	// STEP 4: HANDLERS
	// ========================================
	c.initHandlers()

	log.Info().Msg("DI container initialized")
	return c, nil
}

func dbConfigFrom(cfg *config.Config) *database.DBConfig {
	return &database.DBConfig{
		URL:               cfg.Database.URL,
		MaxConns:          cfg.Database.MaxConns,
		MinConns:          cfg.Database.MinConns,
		MaxConnLifetime:   cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:   cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod: cfg.Database.HealthCheckPeriod,
		ConnectTimeout:    cfg.Database.ConnectTimeout,
		StartupRetries:    cfg.Database.StartupRetries,
		RetryDelay:        cfg.Database.RetryDelay,
	}
}

func (c *Container) initRepositories() {
	c.MovieRepo = movieRepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.MovieService = movieService.NewMovieService(c.MovieRepo)
}

func (c *Container) initHandlers() {
	c.MovieHandler = movieHandler.NewMovieHandler(c.MovieService)
	c.APIHandler = movieHandler.NewAPIHandler(c.MovieService)
}

// Cleanup releases the container resources on shutdown.
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources...")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database pool")
		}
	}
}
