package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"movie-app/internal/domains/movie"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	movies, _ := args.Get(0).([]movie.Movie)
	return movies, args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, title, director string) (*movie.Movie, error) {
	args := m.Called(ctx, title, director)
	created, _ := args.Get(0).(*movie.Movie)
	return created, args.Error(1)
}

func TestListMovies(t *testing.T) {
	ctx := context.Background()

	t.Run("returns repository rows", func(t *testing.T) {
		repo := new(mockRepository)
		want := []movie.Movie{{ID: 1, Title: "Inception", Director: "Christopher Nolan"}}
		repo.On("List", ctx).Return(want, nil)

		got, err := NewMovieService(repo).ListMovies(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		repo.AssertExpectations(t)
	})

	t.Run("empty table is not an error", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("List", ctx).Return([]movie.Movie{}, nil)

		got, err := NewMovieService(repo).ListMovies(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("storage error keeps its kind", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("List", ctx).Return(nil, movie.NewStorageError("select movies", errors.New("down")))

		got, err := NewMovieService(repo).ListMovies(ctx)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, movie.ErrStorage)
		assert.ErrorContains(t, err, "list movies: select movies: down")
	})
}

func TestCreateMovie(t *testing.T) {
	ctx := context.Background()

	t.Run("stores title and director as given", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Create", ctx, "Inception", "Christopher Nolan").
			Return(&movie.Movie{ID: 1, Title: "Inception", Director: "Christopher Nolan"}, nil)

		got, err := NewMovieService(repo).CreateMovie(ctx, &movie.CreateMovieRequest{
			Title:    "Inception",
			Director: "Christopher Nolan",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		repo.AssertExpectations(t)
	})

	t.Run("empty fields are inserted", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Create", ctx, "", "").Return(&movie.Movie{ID: 2}, nil)

		got, err := NewMovieService(repo).CreateMovie(ctx, &movie.CreateMovieRequest{})
		require.NoError(t, err)
		assert.Equal(t, &movie.Movie{ID: 2}, got)
		repo.AssertExpectations(t)
	})

	t.Run("overlong title never reaches storage", func(t *testing.T) {
		repo := new(mockRepository)

		_, err := NewMovieService(repo).CreateMovie(ctx, &movie.CreateMovieRequest{
			Title: strings.Repeat("x", movie.MaxFieldLength+1),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, movie.ErrInvalidInput)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage error is returned to the caller", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Create", ctx, "Heat", "Michael Mann").
			Return(nil, movie.NewStorageError("insert movie", errors.New("constraint")))

		got, err := NewMovieService(repo).CreateMovie(ctx, &movie.CreateMovieRequest{
			Title:    "Heat",
			Director: "Michael Mann",
		})
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, movie.ErrStorage)
	})
}
