// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to classify for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/itemmock/pkg/httpx"
	"github.com/ghuser/itemmock/pkg/telemetry"
	itemdomain "github.com/ghuser/itemmock/services/item/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly; the body
// carries the sentinel's own message, not the wrapping context.
// Defaults to 500 Internal Server Error for unrecognized errors, which are
// also reported to Sentry.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		telemetry.CaptureError(r.Context(), err)
	}
	httpx.JSONError(w, status, message)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound, itemdomain.ErrItemNotFound.Error() // 404
	case errors.Is(err, itemdomain.ErrStatisticsNotFound):
		return http.StatusNotFound, itemdomain.ErrStatisticsNotFound.Error() // 404
	case errors.Is(err, itemdomain.ErrSellerIDMissing):
		return http.StatusBadRequest, itemdomain.ErrSellerIDMissing.Error() // 400
	case errors.Is(err, itemdomain.ErrSellerIDNotInteger):
		return http.StatusBadRequest, itemdomain.ErrSellerIDNotInteger.Error() // 400
	case errors.Is(err, itemdomain.ErrSellerIDOutOfRange):
		return http.StatusBadRequest, itemdomain.ErrSellerIDOutOfRange.Error() // 400
	default:
		return http.StatusInternalServerError, "internal server error" // 500
	}
}
