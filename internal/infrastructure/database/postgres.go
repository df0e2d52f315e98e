package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// DBConfig groups everything needed to build the PostgreSQL pool.
type DBConfig struct {
	URL string

	// Connection pool
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	ConnectTimeout    time.Duration

	// Startup ping
	StartupRetries int
	RetryDelay     time.Duration
}

// PostgresDB owns the process wide connection pool.
// The pool is created once at startup and closed on shutdown.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
}

// NewPostgresDB creates an unconnected PostgresDB. Call Connect to build the pool.
func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{
		Config: config,
		Pool:   nil,
	}
}

// configurePool parses the connection string and applies the pool settings.
func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.Config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// === POOL SIZE ===
	config.MaxConns = db.Config.MaxConns
	config.MinConns = db.Config.MinConns

	// === CONNECTION LIFECYCLE ===
	config.MaxConnLifetime = db.Config.MaxConnLifetime
	config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	config.HealthCheckPeriod = db.Config.HealthCheckPeriod

	// === TIMEOUTS ===
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return config, nil
}

// Connect builds the pool. Connections are opened lazily by pgxpool, so a
// database that is down at startup does not prevent the pool from existing.
func (db *PostgresDB) Connect(ctx context.Context) error {
	log.Info().Msg("[DATABASE] Initializing PostgreSQL pool...")

	config, err := db.configurePool()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create pool: %w", err)
	}

	db.Pool = pool

	log.Info().
		Str("host", config.ConnConfig.Host).
		Str("database", config.ConnConfig.Database).
		Int32("max_conns", config.MaxConns).
		Msg("[DATABASE] PostgreSQL pool created")
	return nil
}

// WaitReady pings the database until it answers or the attempts run out.
// Delay doubles after every failed attempt.
func (db *PostgresDB) WaitReady(ctx context.Context) error {
	var lastErr error

	for attempt := 1; attempt <= db.Config.StartupRetries; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		lastErr = db.Ping(pingCtx)
		cancel()

		if lastErr == nil {
			log.Info().Int("attempt", attempt).Msg("[DATABASE] PostgreSQL is reachable")
			return nil
		}

		log.Warn().
			Err(lastErr).
			Int("attempt", attempt).
			Int("max_attempts", db.Config.StartupRetries).
			Msg("[DATABASE] Ping failed")

		if attempt < db.Config.StartupRetries {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("startup ping cancelled: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("database not reachable after %d attempts: %w",
		db.Config.StartupRetries, lastErr)
}

// HealthCheck pings the database with a short timeout.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	healthCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.Ping(healthCtx)
}
