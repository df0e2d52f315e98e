package movie

import "context"

// Service holds the movie use cases used by the HTTP handlers.
type Service interface {
	// ListMovies returns every stored movie.
	// Errors: *StorageError
	ListMovies(ctx context.Context) ([]Movie, error)

	// CreateMovie validates the request and stores a new movie.
	// Errors: ErrInvalidInput, *StorageError
	CreateMovie(ctx context.Context, req *CreateMovieRequest) (*Movie, error)
}
