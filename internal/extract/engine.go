// Package extract populates a FieldRecord from classified text. Each
// document type is a declarative table of (field, matcher) pairs plus
// optional line-item matchers, run by one shared engine; adding a vendor
// template means adding a table, not a function.
package extract

import (
	"regexp"
	"strings"

	"cargoscan/internal/config"
	"cargoscan/internal/domain"
)

// MatchMode selects how a FieldMatcher consumes the text.
type MatchMode int

const (
	// MatchFirst takes the first match's capture group.
	MatchFirst MatchMode = iota
	// MatchAll joins every match's capture group with ", ", capped by Limit.
	MatchAll
	// MatchFirstLine takes the first non-empty line of the text.
	MatchFirstLine
)

// FieldMatcher extracts a single field. Matchers are independent: one
// pattern failing to match never affects another field.
type FieldMatcher struct {
	Field   string
	Pattern *regexp.Regexp // unused for MatchFirstLine
	Group   int            // submatch index; 0 takes the whole match
	Mode    MatchMode
	Limit   int // MatchAll cap; 0 means unlimited

	// Fallback preserves the legacy constant default some vendor templates
	// shipped with. Only honored when extract.vendor_fallbacks is enabled;
	// otherwise an unmatched field degrades to the "N/A" sentinel.
	Fallback string
}

// LineItemMatcher captures one line-item shape. The int fields are submatch
// indexes into the pattern.
type LineItemMatcher struct {
	Pattern     *regexp.Regexp
	Description int
	Quantity    int
	UnitPrice   int
	Amount      int
}

// Table is the full extraction recipe for one document type.
type Table struct {
	DocumentType domain.DocumentType
	Fields       []FieldMatcher
	LineItems    []LineItemMatcher
}

// Engine runs extraction tables. It is stateless apart from configuration
// and safe for concurrent use.
type Engine struct {
	cfg    config.ExtractConfig
	tables map[domain.DocumentType]Table
}

// NewEngine creates an Engine with the builtin document-type tables.
func NewEngine(cfg config.ExtractConfig) *Engine {
	return &Engine{cfg: cfg, tables: builtinTables()}
}

// Extract populates a FieldRecord for the given document type. Every field
// in the type's table is always present in the result; absence of a match
// is the "N/A" sentinel, never an error. A type without a table yields the
// Unknown placeholder record.
func (e *Engine) Extract(docType domain.DocumentType, text string) domain.FieldRecord {
	table, ok := e.tables[docType]
	if !ok {
		return domain.UnknownRecord()
	}

	rec := domain.NewFieldRecord()
	for _, m := range table.Fields {
		rec.Fields[m.Field] = e.applyField(m, text)
	}

	// Each line-item pattern is matched to exhaustion over the whole text,
	// in table order; matches append in encounter order.
	for _, lm := range table.LineItems {
		for _, sub := range lm.Pattern.FindAllStringSubmatch(text, -1) {
			rec.LineItems = append(rec.LineItems, domain.LineItem{
				Description: normalize(sub[lm.Description]),
				Quantity:    normalize(sub[lm.Quantity]),
				UnitPrice:   normalize(sub[lm.UnitPrice]),
				Amount:      normalize(sub[lm.Amount]),
			})
		}
	}
	return rec
}

// Fields returns the documented field set of a document type's table, in
// table order.
func (e *Engine) Fields(docType domain.DocumentType) []string {
	table, ok := e.tables[docType]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(table.Fields))
	for _, m := range table.Fields {
		out = append(out, m.Field)
	}
	return out
}

func (e *Engine) applyField(m FieldMatcher, text string) string {
	switch m.Mode {
	case MatchFirstLine:
		for _, line := range strings.Split(text, "\n") {
			if s := strings.TrimSpace(line); s != "" {
				return normalize(s)
			}
		}
		return e.missing(m)

	case MatchAll:
		matches := m.Pattern.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			return e.missing(m)
		}
		vals := make([]string, 0, len(matches))
		for _, sub := range matches {
			if m.Limit > 0 && len(vals) >= m.Limit {
				break
			}
			vals = append(vals, normalize(sub[m.Group]))
		}
		return strings.Join(vals, ", ")

	default:
		sub := m.Pattern.FindStringSubmatch(text)
		if sub == nil {
			return e.missing(m)
		}
		v := normalize(sub[m.Group])
		if v == "" {
			return e.missing(m)
		}
		return v
	}
}

func (e *Engine) missing(m FieldMatcher) string {
	if e.cfg.VendorFallbacks && m.Fallback != "" {
		return m.Fallback
	}
	return domain.NotFound
}

// normalize replaces newlines inside captured groups with spaces and trims
// the result.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}
