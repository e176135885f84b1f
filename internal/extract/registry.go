package extract

import (
	"regexp"

	"cargoscan/internal/domain"
)

// Patterns shared across tables.
var (
	dateRe     = regexp.MustCompile(`\b(\d{1,2}[/\-.\s]\d{1,2}[/\-.\s]\d{2,4})\b`)
	awbRe      = regexp.MustCompile(`\b\d{3}[- ]?\d{8}\b`)
	currencyRe = regexp.MustCompile(`\b(USD|EUR|RUB|GBP|AED|IRR)\b`)

	// Columnar invoice row: description, quantity, unit price, amount.
	columnarItemRe = regexp.MustCompile(`(?m)^(.{1,60}?)\s{2,}(\d{1,4})\s+([\d,]+\.\d{2})\s+([\d,]+\.\d{2})\s*$`)
	// "2 x Widget @ 10.00 20.00" style rows.
	labeledItemRe = regexp.MustCompile(`(?mi)^\s*(\d{1,4})\s*x\s+(.+?)\s+@\s*([\d,]+\.\d{2})\s+([\d,]+\.\d{2})\s*$`)
)

func builtinTables() map[domain.DocumentType]Table {
	tables := make(map[domain.DocumentType]Table, 4)
	for _, t := range []Table{
		genericInvoiceTable(),
		genericAirWaybillTable(),
		deltaFreightInvoiceTable(),
		aeroflotAirWaybillTable(),
	} {
		tables[t.DocumentType] = t
	}
	return tables
}
