package handler

import (
	"net/http"
	"os/exec"

	"github.com/gin-gonic/gin"

	"cargoscan/internal/config"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	ocr config.OCRConfig
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(ocr config.OCRConfig) *HealthHandler {
	return &HealthHandler{ocr: ocr}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. The service is ready only when the
// external OCR binaries resolve on PATH; without them image uploads and
// PDFs with no text layer cannot be processed.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := gin.H{}
	ready := true
	for name, bin := range map[string]string{
		"tesseract": h.ocr.Tesseract,
		"pdftoppm":  h.ocr.Pdftoppm,
	} {
		if _, err := exec.LookPath(bin); err != nil {
			checks[name] = "missing: " + bin
			ready = false
		} else {
			checks[name] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": checks})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": checks})
}
