package movie

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrStorage matches every StorageError via errors.Is.
	ErrStorage = errors.New("movie storage error")

	// ErrInvalidInput is returned for requests rejected before reaching storage.
	ErrInvalidInput = errors.New("invalid movie input")
)

// StorageError covers every failure coming from the persistence layer:
// connectivity, query and constraint errors are not told apart.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStorage) match any StorageError.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NewStorageError wraps err for operation op.
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// ToErrorCode converts an error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, ErrStorage):
		return "STORAGE_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
