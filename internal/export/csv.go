// Package export renders an ExtractionResult as a downloadable CSV or XLSX
// artifact. Nothing here persists; exports are derived per request.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"

	"cargoscan/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var lineItemColumns = []string{"Description", "Quantity", "Unit Price", "Amount"}

// CSVWriter wraps csv.Writer for exporting extraction results.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes CSV to w. Callers wanting
// Excel compatibility write BOM first.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteResult writes the result as Field,Value rows (sorted by field name
// for deterministic output) followed by a line-item section when present.
func (w *CSVWriter) WriteResult(res *domain.ExtractionResult) error {
	if err := w.csv.Write([]string{"Field", "Value"}); err != nil {
		return err
	}
	if err := w.csv.Write([]string{"Document Type", string(res.DocumentType)}); err != nil {
		return err
	}
	for _, k := range sortedKeys(res.Record.Fields) {
		if err := w.csv.Write([]string{k, res.Record.Fields[k]}); err != nil {
			return err
		}
	}

	if len(res.Record.LineItems) > 0 {
		if err := w.csv.Write([]string{""}); err != nil {
			return err
		}
		if err := w.csv.Write(lineItemColumns); err != nil {
			return err
		}
		for _, li := range res.Record.LineItems {
			if err := w.csv.Write([]string{li.Description, li.Quantity, li.UnitPrice, li.Amount}); err != nil {
				return err
			}
		}
	}

	w.csv.Flush()
	return w.csv.Error()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a document name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition.
// Format: extraction_{sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("extraction_%s_%s.%s", sanitized, date, ext)
}
