package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/ingest"
)

// Import uveze ZIP arhivu troškovnika (SSE tok napretka).
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nevaljani form podaci"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nije pronađena učitana datoteka"})
		return
	}

	src, err := files[0].Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "otvaranje učitane datoteke nije uspjelo"})
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "čitanje učitane datoteke nije uspjelo"})
		return
	}

	// SSE zaglavlja
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming odgovor nije podržan"})
		return
	}

	coordinator := ingest.NewCoordinator(h.store)
	progressChan := coordinator.Import(data)

	for event := range progressChan {
		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}
		// SSE format: data: {json}\n\n
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}
