package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrPoolNotInitialized is returned by every helper called before Connect or after Close.
var ErrPoolNotInitialized = errors.New("database pool is not initialized")

// Ping checks that the database answers.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return ErrPoolNotInitialized
	}

	if err := db.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes every connection of the pool. Safe to call more than once.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		log.Debug().Msg("[DATABASE] Pool is already closed or was never initialized")
		return nil
	}

	log.Info().Msg("[DATABASE] Closing database connection pool...")
	db.Pool.Close()
	db.Pool = nil
	log.Info().Msg("[DATABASE] Connection pool closed")

	return nil
}

// PoolStats is a snapshot of the pool counters, exposed on the health endpoint.
type PoolStats struct {
	TotalConns      int32         `json:"total_conns"`
	IdleConns       int32         `json:"idle_conns"`
	AcquiredConns   int32         `json:"acquired_conns"`
	MaxConns        int32         `json:"max_conns"`
	AcquireCount    int64         `json:"acquire_count"`
	EmptyAcquires   int64         `json:"empty_acquire_count"`
	CanceledAcquire int64         `json:"canceled_acquire_count"`
	AvgAcquire      time.Duration `json:"avg_acquire_ns"`
}

// Stats returns a snapshot of the pool statistics.
func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, ErrPoolNotInitialized
	}

	raw := db.Pool.Stat()

	return &PoolStats{
		TotalConns:      raw.TotalConns(),
		IdleConns:       raw.IdleConns(),
		AcquiredConns:   raw.AcquiredConns(),
		MaxConns:        raw.MaxConns(),
		AcquireCount:    raw.AcquireCount(),
		EmptyAcquires:   raw.EmptyAcquireCount(),
		CanceledAcquire: raw.CanceledAcquireCount(),
		AvgAcquire:      calculateAvgDuration(raw.AcquireDuration(), raw.AcquireCount()),
	}, nil
}

func calculateAvgDuration(totalDuration time.Duration, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return totalDuration / time.Duration(count)
}
