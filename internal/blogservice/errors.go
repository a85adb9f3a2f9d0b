package blogservice

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/blogtasks/internal/common"
)

const internalErrorMessage = "the server encountered a problem and could not process your request"

// AppError wraps an error returned while serving a blog request and decides
// how it is reported to the client.
type AppError struct {
	Err error
}

func NewAppError(err error) *AppError {
	return &AppError{Err: err}
}

func (e *AppError) Error() string {
	return e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the wrapped error. Errors outside
// the blog taxonomy are internal errors.
func (e *AppError) Status() int {
	switch {
	case errors.Is(e.Err, ErrExistsByID):
		return http.StatusConflict
	case errors.Is(e.Err, ErrNoBlogByID):
		return http.StatusNotFound
	case errors.As(e.Err, &common.ValidationError{}):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Internal reports whether the wrapped error is an infrastructure failure.
func (e *AppError) Internal() bool {
	return e.Status() == http.StatusInternalServerError
}

// Message returns the value placed under "error" in the response body.
// Internal errors never expose their text.
func (e *AppError) Message() any {
	var validationErr common.ValidationError
	switch {
	case errors.As(e.Err, &validationErr):
		return validationErr.Errors
	case e.Internal():
		return internalErrorMessage
	default:
		return e.Err.Error()
	}
}
