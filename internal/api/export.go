package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bernarddrinovac-debug/centralna-baza-troskovnika/internal/exporter"
)

// ExportRequest je zahtjev za izvoz master baze.
type ExportRequest struct {
	Format string `json:"format"` // parquet/csv/xlsx, default parquet
}

// Export serijalizira master i vraća token za preuzimanje.
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nevaljani zahtjev"})
		return
	}
	if req.Format == "" {
		req.Format = "parquet"
	}

	rows := h.store.Rows()
	if len(rows) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "master baza je prazna, prvo uvezi arhivu"})
		return
	}

	var (
		buf         bytes.Buffer
		filename    string
		contentType string
		err         error
	)

	switch req.Format {
	case "parquet":
		filename = "master.parquet"
		contentType = "application/vnd.apache.parquet"
		err = exporter.WriteParquet(&buf, rows)
	case "csv":
		filename = "master.csv"
		contentType = "text/csv; charset=utf-8"
		err = exporter.WriteCSV(&buf, rows)
	case "xlsx":
		filename = "master.xlsx"
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		f, buildErr := exporter.BuildXLSX(rows)
		if buildErr != nil {
			err = buildErr
			break
		}
		_, err = f.WriteTo(&buf)
		f.Close()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("nepoznat format: %q", req.Format)})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("izvoz nije uspio: %v", err)})
		return
	}

	token := h.downloads.put(buf.Bytes(), filename, contentType, h.downloadTTL)

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"filename": filename,
		"rows":     len(rows),
	})
}

// DownloadExport preuzima prethodno izvezenu datoteku po tokenu.
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	dl, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "nepoznat ili istekao token"})
		return
	}
	h.downloads.delete(token)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dl.filename))
	c.Data(http.StatusOK, dl.contentType, dl.payload)
}
