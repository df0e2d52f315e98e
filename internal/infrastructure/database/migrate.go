package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schemaSQL string

// OpenSQL opens a database/sql handle over lib/pq and verifies it.
// Only the schema tool uses it; request traffic goes through the pgx pool.
func OpenSQL(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return db, nil
}

// ApplySchema creates the movies table if it does not exist yet.
// Running it on an existing schema is a no-op.
func ApplySchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Info().Msg("[DATABASE] Schema is up to date")
	return nil
}
