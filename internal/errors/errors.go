package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	// Unknown usernames and wrong passwords are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrForbidden is returned when the caller is known but lacks the required
	// relationship to the resource.
	ErrForbidden = errors.New("you do not have access to this resource")
)

// NotFoundError reports that a resource id does not resolve. It renders as
// the plain-text 404 body, naming the offending id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No %s found with ID %s", e.Resource, e.ID)
}

// NewNotFound builds a NotFoundError for the given resource kind and id.
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// DuplicateUsernameError reports a username collision, naming the offending value.
type DuplicateUsernameError struct {
	Username string
}

func (e *DuplicateUsernameError) Error() string {
	return fmt.Sprintf("Username %s already exists", e.Username)
}

// ErrorResponse represents a standardized JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// MapErrorToHTTP maps domain errors to HTTP errors. NotFound is handled
// separately by the handlers because its body is plain text, not JSON.
func MapErrorToHTTP(err error) *HTTPError {
	var dup *DuplicateUsernameError
	switch {
	case errors.As(err, &dup):
		return &HTTPError{StatusCode: http.StatusUnprocessableEntity, Message: dup.Error(), Code: "DUPLICATE_USERNAME"}
	case errors.Is(err, ErrForbidden):
		return &HTTPError{StatusCode: http.StatusForbidden, Message: ErrForbidden.Error(), Code: "FORBIDDEN"}
	case errors.Is(err, ErrInvalidCredentials):
		return &HTTPError{StatusCode: http.StatusUnauthorized, Message: ErrInvalidCredentials.Error(), Code: "INVALID_CREDENTIALS"}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "internal server error", Code: "INTERNAL_ERROR"}
	}
}
