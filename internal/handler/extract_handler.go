package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cargoscan/internal/domain"
	"cargoscan/internal/export"
	"cargoscan/internal/service"
)

// ExtractHandler handles document extraction endpoints.
type ExtractHandler struct {
	extractionService service.ExtractionService
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractionService service.ExtractionService) *ExtractHandler {
	return &ExtractHandler{extractionService: extractionService}
}

// extractResponse is the JSON body returned by Extract.
type extractResponse struct {
	DocumentType domain.DocumentType `json:"document_type"`
	Record       domain.FieldRecord  `json:"record"`
	RawText      string              `json:"raw_text"`
	Pages        int                 `json:"pages,omitempty"`
	Method       string              `json:"method,omitempty"`
	DurationMS   int64               `json:"duration_ms"`
}

// runPipeline reads the multipart form and runs the extraction pipeline,
// returning the result and the uploaded filename. On failure it writes the
// error response and returns a nil result.
func (h *ExtractHandler) runPipeline(c *gin.Context) (*domain.ExtractionResult, string) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return nil, ""
	}
	defer func() { _ = file.Close() }()

	input := service.ExtractInput{
		File:     file,
		Header:   header,
		ForceOCR: c.PostForm("force_ocr") == "true",
	}

	result, err := h.extractionService.Extract(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return nil, ""
	}
	return result, header.Filename
}

// Extract handles POST /api/v1/extract. It always answers 200 once the
// upload itself is valid; pipeline failures are reported inside the result.
func (h *ExtractHandler) Extract(c *gin.Context) {
	result, _ := h.runPipeline(c)
	if result == nil {
		return
	}
	RespondOK(c, extractResponse{
		DocumentType: result.DocumentType,
		Record:       result.Record,
		RawText:      result.RawText,
		Pages:        result.Pages,
		Method:       result.Method,
		DurationMS:   result.Duration.Milliseconds(),
	})
}

// ExtractRawText handles POST /api/v1/extract/raw-text. It returns the
// acquired text as a plain-text attachment named after the upload.
func (h *ExtractHandler) ExtractRawText(c *gin.Context) {
	result, name := h.runPipeline(c)
	if result == nil {
		return
	}

	filename := fmt.Sprintf("raw_text_%s.txt", name)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(result.RawText))
}

// ExportCSV handles POST /api/v1/extract/export/csv. It runs the pipeline
// and streams the result as a CSV attachment.
func (h *ExtractHandler) ExportCSV(c *gin.Context) {
	result, name := h.runPipeline(c)
	if result == nil {
		return
	}

	var buf bytes.Buffer
	buf.Write(export.BOM)
	if err := export.NewCSVWriter(&buf).WriteResult(result); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(name, "csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX handles POST /api/v1/extract/export/xlsx. It runs the pipeline
// and streams the result as an Excel workbook.
func (h *ExtractHandler) ExportXLSX(c *gin.Context) {
	result, name := h.runPipeline(c)
	if result == nil {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, result); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(name, "xlsx")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
