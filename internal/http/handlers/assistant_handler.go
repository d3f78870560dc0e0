// README: Address lookup and free-text trip assistant handlers.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/assistant"
)

type AssistantHandler struct {
	geocoder  assistant.Geocoder
	assistant *assistant.Service
}

// NewAssistantHandler accepts nil for either dependency; the matching
// endpoint then answers 503.
func NewAssistantHandler(geocoder assistant.Geocoder, assistantSvc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{geocoder: geocoder, assistant: assistantSvc}
}

// Geocode handles GET /api/geocode?address=.
func (h *AssistantHandler) Geocode(c *gin.Context) {
	if h.geocoder == nil {
		writeFareError(c, ErrNotConfigured)
		return
	}
	address := strings.TrimSpace(c.Query("address"))
	if address == "" {
		writeError(c, http.StatusBadRequest, "missing address")
		return
	}

	coord, err := h.geocoder.Resolve(c.Request.Context(), address)
	if err != nil {
		writeFareError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"address": address, "location": coord})
}

type tripReq struct {
	Message string `json:"message"`
}

// Trip handles POST /api/assistant/trip.
func (h *AssistantHandler) Trip(c *gin.Context) {
	if h.assistant == nil {
		writeFareError(c, ErrNotConfigured)
		return
	}
	var req tripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	res, err := h.assistant.Estimate(ctx, req.Message)
	if err != nil {
		writeFareError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}
