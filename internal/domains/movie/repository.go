package movie

import "context"

// Repository is the data access layer for movies.
// Every failure is returned as a *StorageError.
type Repository interface {
	// List returns all movies in storage order. No rows gives an empty slice.
	List(ctx context.Context) ([]Movie, error)

	// Create inserts one movie and returns it with its assigned ID.
	// Title and director are stored as given.
	Create(ctx context.Context, title, director string) (*Movie, error)
}
