// README: Scores a deterministic sample of the held-out CSV.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/pricing"
	"farecast/internal/modules/samples"
)

type SamplesHandler struct {
	pricing *pricing.Service
	table   *samples.Table
	size    int
	seed    int64
}

// NewSamplesHandler serves table; a nil table answers 503.
func NewSamplesHandler(pricingSvc *pricing.Service, table *samples.Table, size int, seed int64) *SamplesHandler {
	return &SamplesHandler{pricing: pricingSvc, table: table, size: size, seed: seed}
}

type samplesResp struct {
	N       int                 `json:"n"`
	Seed    int64               `json:"seed"`
	Total   int                 `json:"total"`
	Rows    []pricing.ScoredRow `json:"rows"`
	// Skipped covers the whole file, parsed once at load.
	Skipped []samples.Skipped   `json:"skipped"`
}

// List handles GET /api/samples?n=&seed=.
func (h *SamplesHandler) List(c *gin.Context) {
	if h.table == nil {
		writeFareError(c, ErrNotConfigured)
		return
	}

	n := h.size
	if v := c.Query("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			writeError(c, http.StatusBadRequest, "invalid n")
			return
		}
		n = parsed
	}
	seed := h.seed
	if v := c.Query("seed"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid seed")
			return
		}
		seed = parsed
	}

	rows := samples.Sample(h.table.Rows, n, seed)
	res, err := h.pricing.ScoreBatch(c.Request.Context(), rows)
	if err != nil {
		writeFareError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, samplesResp{
		N:       n,
		Seed:    seed,
		Total:   len(h.table.Rows),
		Rows:    res.Rows,
		Skipped: h.table.Skipped,
	})
}
