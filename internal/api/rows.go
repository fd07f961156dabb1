package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListRows pretražuje master bazu.
// GET /api/rows?q=<opis upit>&jm=<jm filter>
func (h *Handler) ListRows(c *gin.Context) {
	q := c.Query("q")
	jm := c.Query("jm")

	rows := h.store.Search(q, jm)

	c.JSON(http.StatusOK, gin.H{
		"total": len(rows),
		"rows":  rows,
	})
}

// GetStats vraća KPI brojače master baze.
// GET /api/stats
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}

// GetPriceHistory vraća točke povijesti jedinične cijene za upit.
// GET /api/history?q=<opis upit>
func (h *Handler) GetPriceHistory(c *gin.Context) {
	points := h.store.PriceHistory(c.Query("q"))

	c.JSON(http.StatusOK, gin.H{
		"total":  len(points),
		"points": points,
	})
}
