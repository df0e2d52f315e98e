package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"movie-app/internal/domains/movie"
	"movie-app/internal/web"
)

const (
	// ListPath is where the create endpoint redirects to.
	ListPath = "/movies"

	listErrorBody   = "Error fetching movies"
	createErrorBody = "Error creating movie"
)

// MovieHandler serves the HTML pages.
type MovieHandler struct {
	service movie.Service
}

func NewMovieHandler(svc movie.Service) *MovieHandler {
	return &MovieHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET / and GET /movies
// ════════════════════════════════════════════════════════════════

// List renders every movie under the given page title.
func (h *MovieHandler) List(title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		movies, err := h.service.ListMovies(c.Request.Context())
		if err != nil {
			log.Error().
				Err(err).
				Str("request_id", c.GetString("request_id")).
				Msg("Error fetching movies")
			c.String(http.StatusInternalServerError, listErrorBody)
			return
		}

		c.HTML(http.StatusOK, web.IndexTemplate, web.IndexPage{
			Title:  title,
			Movies: movies,
		})
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /movies/add (form: title, director)
// ════════════════════════════════════════════════════════════════

// Create stores the submitted movie and redirects to the listing.
func (h *MovieHandler) Create(c *gin.Context) {
	var req movie.CreateMovieRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid form body")
		return
	}

	if _, err := h.service.CreateMovie(c.Request.Context(), &req); err != nil {
		if errors.Is(err, movie.ErrInvalidInput) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}

		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("Error creating movie")
		c.String(movie.ToHTTPStatus(err), createErrorBody)
		return
	}

	c.Redirect(http.StatusSeeOther, ListPath)
}
