package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/store"
)

// Handler je API sloj nad master bazom. Tanki plumbing: sva logika
// živi u parser/archive/ingest/store paketima.
type Handler struct {
	store       *store.MemoryStore
	downloads   *exportDownloadStore
	downloadTTL time.Duration
}

// NewHandler stvara API handler; downloadTTL određuje koliko dugo
// vrijedi token pripremljenog izvoza.
func NewHandler(s *store.MemoryStore, downloadTTL time.Duration) *Handler {
	return &Handler{
		store:       s,
		downloads:   newExportDownloadStore(),
		downloadTTL: downloadTTL,
	}
}

// RegisterRoutes registrira API rute.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// status sustava
	router.GET("/status", h.GetStatus)

	// uvoz arhive
	router.POST("/import", h.Import)

	// pretraga i analitika
	router.GET("/rows", h.ListRows)
	router.GET("/stats", h.GetStats)
	router.GET("/history", h.GetPriceHistory)

	// izvoz master baze
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
