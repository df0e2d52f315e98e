package movie

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxFieldLength bounds title and director. Empty values are allowed.
const MaxFieldLength = 1000

// CreateMovieRequest is the body of both the HTML form (POST /movies/add)
// and the JSON API (POST /api/v1/movies). Missing fields bind as "".
type CreateMovieRequest struct {
	Title    string `form:"title" json:"title"`
	Director string `form:"director" json:"director"`
}

// Validate only enforces the length bound.
func (r CreateMovieRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.RuneLength(0, MaxFieldLength).Error(fmt.Sprintf("title must be at most %d characters", MaxFieldLength)),
		),
		validation.Field(&r.Director,
			validation.RuneLength(0, MaxFieldLength).Error(fmt.Sprintf("director must be at most %d characters", MaxFieldLength)),
		),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
