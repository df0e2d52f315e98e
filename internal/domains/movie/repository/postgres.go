package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"movie-app/internal/domains/movie"
)

// Querier is the subset of *pgxpool.Pool the repository uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// postgresRepository implements movie.Repository on top of a pgx pool.
type postgresRepository struct {
	db Querier
}

// NewPostgresRepository creates the movie repository.
// The pool is injected by the container; the repository never closes it.
func NewPostgresRepository(db Querier) movie.Repository {
	return &postgresRepository{db: db}
}

const (
	// No ORDER BY: rows come back in storage order.
	listMoviesQuery = `
        SELECT id, COALESCE(title, ''), COALESCE(director, '')
        FROM movies
    `

	createMovieQuery = `
        INSERT INTO movies (title, director)
        VALUES ($1, $2)
        RETURNING id, COALESCE(title, ''), COALESCE(director, '')
    `
)

// List returns all movies. An empty table gives an empty, non-nil slice.
func (r *postgresRepository) List(ctx context.Context) ([]movie.Movie, error) {
	rows, err := r.db.Query(ctx, listMoviesQuery)
	if err != nil {
		return nil, storageError("select movies", err)
	}
	defer rows.Close()

	movies := make([]movie.Movie, 0)
	for rows.Next() {
		var m movie.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Director); err != nil {
			return nil, storageError("scan movie", err)
		}
		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("iterate movies", err)
	}

	return movies, nil
}

// Create inserts one movie and returns it with the ID assigned by the database.
func (r *postgresRepository) Create(ctx context.Context, title, director string) (*movie.Movie, error) {
	var created movie.Movie
	err := r.db.QueryRow(ctx, createMovieQuery, title, director).Scan(
		&created.ID,
		&created.Title,
		&created.Director,
	)
	if err != nil {
		return nil, storageError("insert movie", err)
	}

	return &created, nil
}

// storageError wraps err as a movie.StorageError and logs the PostgreSQL
// error code when there is one.
func storageError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		log.Debug().
			Str("op", op).
			Str("pg_code", pgErr.Code).
			Str("constraint", pgErr.ConstraintName).
			Msg("postgres error")
	}
	return movie.NewStorageError(op, err)
}
