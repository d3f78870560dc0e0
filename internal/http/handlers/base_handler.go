// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/ai"
	"farecast/internal/maps"
	"farecast/internal/modules/predictor"
	"farecast/internal/modules/trip"
)

// ErrNotConfigured is returned by optional endpoints whose backing service
// was not set up (missing API key or sample file).
var ErrNotConfigured = errors.New("service not configured")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeFareError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trip.ErrInvalidRequest),
		errors.Is(err, maps.ErrOutOfRegion),
		errors.Is(err, ai.ErrIncompleteTrip):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, predictor.ErrUnavailable):
		writeError(c, http.StatusServiceUnavailable, "fare prediction unavailable")
	case errors.Is(err, ErrNotConfigured):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, maps.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
