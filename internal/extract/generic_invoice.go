package extract

import (
	"regexp"

	"cargoscan/internal/domain"
)

func genericInvoiceTable() Table {
	return Table{
		DocumentType: domain.DocTypeGenericInvoice,
		Fields: []FieldMatcher{
			{
				Field:   "invoice_number",
				Pattern: regexp.MustCompile(`(?i)invoice\s*(?:no\.?|number)?\s*[:#]?\s*([A-Za-z0-9][A-Za-z0-9-]*)`),
				Group:   1,
			},
			{
				Field:   "invoice_date",
				Pattern: dateRe,
				Group:   1,
			},
			{
				Field:   "total_amount",
				Pattern: regexp.MustCompile(`(?i)(?:total|amount due|grand total)[^\d]*([\d,]+\.\d{2})`),
				Group:   1,
			},
			{
				Field:   "currency",
				Pattern: currencyRe,
				Group:   1,
			},
			{
				Field: "vendor_name",
				Mode:  MatchFirstLine,
			},
		},
		LineItems: []LineItemMatcher{
			{Pattern: columnarItemRe, Description: 1, Quantity: 2, UnitPrice: 3, Amount: 4},
			{Pattern: labeledItemRe, Quantity: 1, Description: 2, UnitPrice: 3, Amount: 4},
		},
	}
}
