package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"cargoscan/internal/acquire"
	"cargoscan/internal/config"
	"cargoscan/internal/domain"
)

// ExtractInput is the DTO for extraction requests.
type ExtractInput struct {
	File     multipart.File
	Header   *multipart.FileHeader
	ForceOCR bool
}

// TextAcquirer produces the document text from raw bytes.
type TextAcquirer interface {
	Acquire(ctx context.Context, doc domain.RawDocument, forceOCR bool) (acquire.AcquiredText, error)
}

// DocumentClassifier assigns a document type to acquired text.
type DocumentClassifier interface {
	Classify(text string) domain.DocumentType
}

// FieldExtractor populates a FieldRecord for a document type.
type FieldExtractor interface {
	Extract(docType domain.DocumentType, text string) domain.FieldRecord
	Fields(docType domain.DocumentType) []string
}

// ExtractionService runs the full acquire -> classify -> extract pipeline
// for one uploaded document.
type ExtractionService interface {
	Extract(ctx context.Context, input ExtractInput) (*domain.ExtractionResult, error)
}

type extractionService struct {
	acquirer   TextAcquirer
	classifier DocumentClassifier
	engine     FieldExtractor
	cfg        *config.UploadConfig
}

// NewExtractionService creates an ExtractionService implementation.
func NewExtractionService(
	acquirer TextAcquirer,
	classifier DocumentClassifier,
	engine FieldExtractor,
	cfg *config.UploadConfig,
) ExtractionService {
	return &extractionService{
		acquirer:   acquirer,
		classifier: classifier,
		engine:     engine,
		cfg:        cfg,
	}
}

// Extract validates the upload, then runs the pipeline strictly in
// sequence. Upload validation failures surface as domain errors. An
// acquisition failure is terminal and collapses into an Error-typed result
// with an {"error": ...} record; it is never retried and never propagated.
func (s *extractionService) Extract(ctx context.Context, input ExtractInput) (*domain.ExtractionResult, error) {
	start := time.Now()

	doc, err := s.readUpload(input)
	if err != nil {
		return nil, err
	}

	// force_ocr only applies to PDFs; raster kinds always OCR.
	forceOCR := input.ForceOCR && doc.Kind == domain.FileTypePDF

	acquired, err := s.acquirer.Acquire(ctx, *doc, forceOCR)
	if err != nil {
		logAcquireFailure(doc.Name, err)
		return &domain.ExtractionResult{
			DocumentType: domain.DocTypeError,
			Record:       domain.ErrorRecord(fmt.Sprintf("Processing error: %v", err)),
			RawText:      "",
			Duration:     time.Since(start),
		}, nil
	}

	docType := s.classifier.Classify(acquired.Text)

	var rec domain.FieldRecord
	if domain.ExtractableTypes[docType] {
		rec = s.engine.Extract(docType, acquired.Text)
	} else {
		rec = domain.UnknownRecord()
	}

	return &domain.ExtractionResult{
		DocumentType: docType,
		Record:       rec,
		RawText:      acquired.Text,
		Pages:        acquired.Pages,
		Method:       acquired.Method,
		Duration:     time.Since(start),
	}, nil
}

// readUpload validates extension and size, then buffers the upload into a
// request-scoped RawDocument. Content is not sniffed here: bytes that do not
// decode as the declared kind fail in acquisition and collapse into an
// Error-typed result rather than a transport error.
func (s *extractionService) readUpload(input ExtractInput) (*domain.RawDocument, error) {
	if input.Header == nil || input.File == nil {
		return nil, domain.ErrMissingFile
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	kind, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// The declared size is client-supplied; cap the read as well.
	data, err := io.ReadAll(io.LimitReader(input.File, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	return &domain.RawDocument{
		Data: data,
		Kind: kind,
		Name: filepath.Base(input.Header.Filename),
	}, nil
}

// logAcquireFailure records the tagged cause before it is collapsed into
// the generic error record.
func logAcquireFailure(name string, err error) {
	var decodeErr *acquire.DecodeError
	var engineErr *acquire.EngineError
	var mediaErr *acquire.UnsupportedMediaError
	switch {
	case errors.As(err, &decodeErr):
		log.Printf("extractionService: decode failure for %s (kind=%s): %v", name, decodeErr.Kind, decodeErr.Err)
	case errors.As(err, &engineErr):
		log.Printf("extractionService: %s failure for %s (page=%d): %v; stderr: %s",
			engineErr.Engine, name, engineErr.Page, engineErr.Err, engineErr.Stderr)
	case errors.As(err, &mediaErr):
		log.Printf("extractionService: unsupported media kind %q for %s", mediaErr.Kind, name)
	default:
		log.Printf("extractionService: acquisition failure for %s: %v", name, err)
	}
}
