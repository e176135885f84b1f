// Package acquire turns an uploaded document into a single text string.
// PDFs yield their native text layer unless OCR is forced; forced OCR and
// raster images go through pdftoppm/tesseract behind a stubbable Runner.
package acquire

import (
	"context"

	"cargoscan/internal/config"
	"cargoscan/internal/domain"
)

// PageBreak terminates each page's text in PDF sources. The form feed
// matches what pdftotext-style tools emit, so page counting survives
// round-trips through the raw-text download. Every page carries the marker,
// the last one included.
const PageBreak = "\n\f\n"

// Acquisition methods.
const (
	MethodPDFText  = "pdf-text"
	MethodPDFOCR   = "pdf-ocr"
	MethodImageOCR = "image-ocr"
)

// AcquiredText is the outcome of text acquisition for one document.
type AcquiredText struct {
	Text   string
	Pages  int
	Method string
}

// Acquirer runs text acquisition with a fixed engine configuration.
type Acquirer struct {
	cfg    config.OCRConfig
	runner Runner
}

// NewAcquirer creates an Acquirer that shells out to the configured
// tesseract and pdftoppm binaries.
func NewAcquirer(cfg config.OCRConfig) *Acquirer {
	return &Acquirer{cfg: cfg, runner: execRunner{}}
}

// NewAcquirerWithRunner creates an Acquirer with a custom command runner.
// Tests use this to stub the external engines.
func NewAcquirerWithRunner(cfg config.OCRConfig, r Runner) *Acquirer {
	return &Acquirer{cfg: cfg, runner: r}
}

// Acquire produces the full document text. forceOCR only applies to PDFs;
// raster images always go through OCR. A failure anywhere aborts the whole
// acquisition; there is no per-page recovery or retry.
func (a *Acquirer) Acquire(ctx context.Context, doc domain.RawDocument, forceOCR bool) (AcquiredText, error) {
	switch doc.Kind {
	case domain.FileTypePDF:
		if forceOCR {
			return a.pdfOCR(ctx, doc)
		}
		return a.pdfText(doc)
	case domain.FileTypePNG, domain.FileTypeJPG:
		return a.imageOCR(ctx, doc)
	default:
		return AcquiredText{}, &UnsupportedMediaError{Kind: string(doc.Kind)}
	}
}
