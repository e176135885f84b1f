package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"cargoscan/internal/config"
	"cargoscan/internal/handler"
	"cargoscan/internal/router"
	"cargoscan/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetup_Routes(t *testing.T) {
	cfg := &config.Config{}
	extractH := handler.NewExtractHandler(new(mocks.MockExtractionService))
	healthH := handler.NewHealthHandler(config.OCRConfig{Tesseract: "sh", Pdftoppm: "ls"})

	r := router.Setup(cfg, extractH, healthH)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/readyz", http.NoBody)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Extraction endpoints exist and reject an empty body with 400 rather
	// than 404.
	for _, path := range []string{
		"/api/v1/extract",
		"/api/v1/extract/raw-text",
		"/api/v1/extract/export/csv",
		"/api/v1/extract/export/xlsx",
	} {
		w = httptest.NewRecorder()
		req, _ = http.NewRequest(http.MethodPost, path, http.NoBody)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
	}

	// Unknown routes 404.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/nope", http.NoBody)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
