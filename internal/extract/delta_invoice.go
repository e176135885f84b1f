package extract

import (
	"regexp"

	"cargoscan/internal/domain"
)

// deltaFreightInvoiceTable targets the fixed-format invoices issued by
// Delta Freight Services. The wording is tied to that template; layout
// changes upstream mean touching this table and nothing else.
func deltaFreightInvoiceTable() Table {
	return Table{
		DocumentType: domain.DocTypeDeltaFreightInvoice,
		Fields: []FieldMatcher{
			{
				Field:   "invoice_number",
				Pattern: regexp.MustCompile(`(?i)invoice\s*(?:no\.?|number|#)?\s*[:#]?\s*([A-Za-z0-9][A-Za-z0-9-]+)`),
				Group:   1,
			},
			{
				Field:   "invoice_date",
				Pattern: regexp.MustCompile(`\b((?:\d{1,2}|[A-Za-z]{3,9})[/\-.\s]\d{1,2}[/\-.\s]\d{2,4})\b`),
				Group:   1,
			},
			{
				Field:   "awb_number",
				Pattern: awbRe,
				Group:   0,
			},
			{
				Field:   "shipper",
				Pattern: regexp.MustCompile(`(?i)shipper\s*:?\s*\n?([^\n]+)`),
				Group:   1,
			},
			{
				Field:   "consignee",
				Pattern: regexp.MustCompile(`(?i)consignee\s*:?\s*\n?([^\n]+)`),
				Group:   1,
			},
			{
				Field:   "origin",
				Pattern: regexp.MustCompile(`(?i)(?:origin|port of loading)\s*:?\s*([A-Z]{3})\b`),
				Group:   1,
			},
			{
				Field:   "destination",
				Pattern: regexp.MustCompile(`(?i)(?:destination|port of discharge)\s*:?\s*([A-Z]{3})\b`),
				Group:   1,
			},
			{
				Field:    "gross_weight_kg",
				Pattern:  regexp.MustCompile(`(?i)gross\s*weight\s*:?\s*([\d.]+)\s*kgs?\b`),
				Group:    1,
				Fallback: "39",
			},
			{
				Field:   "chargeable_weight_kg",
				Pattern: regexp.MustCompile(`(?i)chargeable\s*weight\s*:?\s*([\d.]+)\s*kgs?\b`),
				Group:   1,
			},
			{
				Field:   "total_amount",
				Pattern: regexp.MustCompile(`(?i)(?:total\s*(?:due|amount)?|amount\s*due|grand\s*total)[^\d]*([\d,]+\.\d{2})`),
				Group:   1,
			},
			{
				Field:    "currency",
				Pattern:  currencyRe,
				Group:    1,
				Fallback: "USD",
			},
			{
				Field:   "payment_terms",
				Pattern: regexp.MustCompile(`(?i)payment\s*terms\s*:?\s*([^\n]+)`),
				Group:   1,
			},
		},
		LineItems: []LineItemMatcher{
			{Pattern: columnarItemRe, Description: 1, Quantity: 2, UnitPrice: 3, Amount: 4},
		},
	}
}
