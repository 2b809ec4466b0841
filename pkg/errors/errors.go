package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Tokens and authorization.
var (
	ErrInvalidSigningMethod = errors.New("unexpected token signing method")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrEmptyAuthHeader      = errors.New("authorization header is missing")
	ErrInvalidAuthHeader    = errors.New("malformed authorization header")
	ErrForbidden            = errors.New("access denied")
)

// Context.
var (
	ErrClaimsNotFoundInContext = errors.New("auth claims not found in request context")
)

// General.
var (
	ErrNotFound   = errors.New("record not found")
	ErrBadRequest = errors.New("bad request")
)

// HttpError carries the HTTP code and user-facing message alongside the
// wrapped internal error, which stays in the logs only.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

// HTTPStatus maps an error to the response code ErrorResponse should use.
func HTTPStatus(err error) int {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrEmptyAuthHeader),
		errors.Is(err, ErrInvalidAuthHeader),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrInvalidSigningMethod),
		errors.Is(err, ErrClaimsNotFoundInContext):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
