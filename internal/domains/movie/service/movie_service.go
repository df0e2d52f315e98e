package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"movie-app/internal/domains/movie"
)

type movieService struct {
	repo movie.Repository
}

// NewMovieService creates the movie service on top of repo.
func NewMovieService(repo movie.Repository) movie.Service {
	return &movieService{repo: repo}
}

// ListMovies returns every stored movie. Storage errors are passed through
// wrapped, so errors.Is(err, movie.ErrStorage) still holds.
func (s *movieService) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// CreateMovie stores a new movie. Empty title and director are accepted.
func (s *movieService) CreateMovie(ctx context.Context, req *movie.CreateMovieRequest) (*movie.Movie, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.Title, req.Director)
	if err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	log.Info().
		Int64("movie_id", created.ID).
		Str("title", created.Title).
		Msg("Movie created")

	return created, nil
}
