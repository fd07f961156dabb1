package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse je odgovor o stanju sustava.
type StatusResponse struct {
	Initialized    bool   `json:"initialized"`    // ima li učitanih podataka
	TotalRows      int    `json:"totalRows"`      // broj stavki u masteru
	LastImportTime string `json:"lastImportTime"` // vrijeme zadnjeg uvoza
}

// GetStatus vraća stanje sustava.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	count := h.store.Count()

	last := ""
	if t := h.store.LastImportTime(); !t.IsZero() {
		last = t.Format("2006-01-02 15:04:05")
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:    count > 0,
		TotalRows:      count,
		LastImportTime: last,
	})
}
