// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/orderline/pkg/httpx"
	feeddomain "github.com/ghuser/orderline/services/feed/domain"
	recordsdomain "github.com/ghuser/orderline/services/records/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, recordsdomain.ErrInvalidInput):
		return http.StatusBadRequest // 400
	case errors.Is(err, recordsdomain.ErrNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, recordsdomain.ErrConflict):
		return http.StatusConflict // 409
	case errors.Is(err, feeddomain.ErrMalformedBatch):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
