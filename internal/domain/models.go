package domain

import "time"

// NotFound is the sentinel stored for a field whose pattern did not match.
// Absence of a match is never an error.
const NotFound = "N/A"

// RawDocument is the uploaded byte sequence plus its declared media kind.
// It is immutable once received and lives only for the duration of one
// extraction request.
type RawDocument struct {
	Data []byte
	Kind FileType
	Name string
}

// LineItem is one row of an invoice's itemized charges.
type LineItem struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Amount      string `json:"amount"`
}

// FieldRecord holds the extracted fields for one document. The field set is
// fully determined by the document type; invoice types additionally carry an
// ordered sequence of line items.
type FieldRecord struct {
	Fields    map[string]string `json:"fields"`
	LineItems []LineItem        `json:"line_items,omitempty"`
}

// NewFieldRecord returns an empty record with an allocated field map.
func NewFieldRecord() FieldRecord {
	return FieldRecord{Fields: make(map[string]string)}
}

// UnknownRecord is the placeholder returned when no classification rule
// matched the document text.
func UnknownRecord() FieldRecord {
	return FieldRecord{Fields: map[string]string{
		"document_type": string(DocTypeUnknown),
		"message":       "Could not confidently classify this document.",
	}}
}

// ErrorRecord is the terminal record returned when text acquisition failed.
func ErrorRecord(msg string) FieldRecord {
	return FieldRecord{Fields: map[string]string{"error": msg}}
}

// ExtractionResult is the outcome of one full acquire-classify-extract pass.
// Nothing in it outlives the request; downloads are derived from it on the
// spot.
type ExtractionResult struct {
	DocumentType DocumentType  `json:"document_type"`
	Record       FieldRecord   `json:"record"`
	RawText      string        `json:"raw_text"`
	Pages        int           `json:"pages"`
	Method       string        `json:"method"`
	Duration     time.Duration `json:"-"`
}
