// internal/client/errors.go
package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation = errors.New("validation failure")
	ErrNotFound   = errors.New("not found")
	ErrNetwork    = errors.New("network failure")
)

// APIError is a non-2xx response. It unwraps to ErrValidation, ErrNotFound
// or ErrNetwork.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.kind, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

func classify(status int) error {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrNetwork
	}
}
