package acquire

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"cargoscan/internal/domain"
)

// validatePDF decodes the PDF structure with pdfcpu before any engine work.
// Rejecting garbage here keeps "declared PDF but not a PDF" a DecodeError
// rather than a downstream engine failure.
func validatePDF(data []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pdfCtx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return 0, &DecodeError{Kind: domain.FileTypePDF, Err: err}
	}
	if err := pdfCtx.EnsurePageCount(); err != nil {
		return 0, &DecodeError{Kind: domain.FileTypePDF, Err: err}
	}
	return pdfCtx.PageCount, nil
}

// pdfText extracts the native text layer of every page. A page without a
// text layer contributes an empty string but keeps its page-break marker so
// page numbering survives concatenation.
func (a *Acquirer) pdfText(doc domain.RawDocument) (AcquiredText, error) {
	if _, err := validatePDF(doc.Data); err != nil {
		return AcquiredText{}, err
	}

	r, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		return AcquiredText{}, &DecodeError{Kind: domain.FileTypePDF, Err: err}
	}

	pages := make([]string, 0, r.NumPage())
	for n := 1; n <= r.NumPage(); n++ {
		page := r.Page(n)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText(page))
	}

	return AcquiredText{
		Text:   joinPages(pages),
		Pages:  r.NumPage(),
		Method: MethodPDFText,
	}, nil
}

// joinPages appends the break marker after every page, the last included.
func joinPages(pages []string) string {
	var b strings.Builder
	for _, p := range pages {
		b.WriteString(p)
		b.WriteString(PageBreak)
	}
	return b.String()
}

// pageText extracts one page's text layer. The parser panics on some
// malformed content streams and errors on undecodable fonts; either way the
// page keeps its slot empty.
func pageText(page pdf.Page) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}

// pdfOCR rasterizes every page with pdftoppm and runs tesseract on each,
// optionally cleaning the rendered image up first.
func (a *Acquirer) pdfOCR(ctx context.Context, doc domain.RawDocument) (AcquiredText, error) {
	if _, err := validatePDF(doc.Data); err != nil {
		return AcquiredText{}, err
	}

	tmpDir, err := os.MkdirTemp("", "cargoscan-ocr-*")
	if err != nil {
		return AcquiredText{}, fmt.Errorf("creating temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	pdfPath := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(pdfPath, doc.Data, 0o600); err != nil {
		return AcquiredText{}, fmt.Errorf("writing temp pdf: %w", err)
	}

	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	prefix := filepath.Join(tmpDir, "page")
	_, errb, err := a.runner.Run(ctx, a.cfg.Pdftoppm, "-r", strconv.Itoa(a.cfg.DPI), "-png", pdfPath, prefix)
	if err != nil {
		return AcquiredText{}, &EngineError{Engine: "pdftoppm", Stderr: truncate(string(errb), 8<<10), Err: err}
	}

	// collect rendered pages (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return AcquiredText{}, &EngineError{Engine: "pdftoppm", Err: fmt.Errorf("no pages rendered")}
	}

	pages := make([]string, 0, len(matches))
	for i, img := range matches {
		if a.cfg.Preprocess {
			if err := a.preprocessFile(img); err != nil {
				return AcquiredText{}, &EngineError{Engine: "preprocess", Page: i + 1, Err: err}
			}
		}
		txt, err := a.runTesseract(ctx, img, i+1)
		if err != nil {
			return AcquiredText{}, err
		}
		pages = append(pages, txt)
	}

	return AcquiredText{
		Text:   joinPages(pages),
		Pages:  len(matches),
		Method: MethodPDFOCR,
	}, nil
}
