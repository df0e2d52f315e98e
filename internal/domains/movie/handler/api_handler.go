package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"movie-app/internal/domains/movie"
	"movie-app/internal/shared/response"
)

// APIHandler serves the JSON variant of the movie endpoints.
type APIHandler struct {
	service movie.Service
}

func NewAPIHandler(svc movie.Service) *APIHandler {
	return &APIHandler{
		service: svc,
	}
}

// GET /api/v1/movies
func (h *APIHandler) List(c *gin.Context) {
	movies, err := h.service.ListMovies(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching movies")
		response.ErrorResponse(c, movie.ToHTTPStatus(err), movie.ToErrorCode(err), listErrorBody)
		return
	}

	response.Success(c, http.StatusOK, movies)
}

// POST /api/v1/movies
func (h *APIHandler) Create(c *gin.Context) {
	var req movie.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	created, err := h.service.CreateMovie(c.Request.Context(), &req)
	if err != nil {
		message := createErrorBody
		if errors.Is(err, movie.ErrInvalidInput) {
			message = err.Error()
		} else {
			log.Error().Err(err).Msg("Error creating movie")
		}
		response.ErrorResponse(c, movie.ToHTTPStatus(err), movie.ToErrorCode(err), message)
		return
	}

	response.Success(c, http.StatusCreated, created)
}
