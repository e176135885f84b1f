package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"cargoscan/internal/domain"
)

const (
	fieldsSheet    = "Fields"
	lineItemsSheet = "Line Items"
)

// WriteXLSX writes the result as a workbook with a Fields sheet and, when
// line items are present, a Line Items sheet.
func WriteXLSX(w io.Writer, res *domain.ExtractionResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", fieldsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(fieldsSheet, "A1", &[]interface{}{"Field", "Value"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := 2
	if err := f.SetSheetRow(fieldsSheet, fmt.Sprintf("A%d", row), &[]interface{}{"Document Type", string(res.DocumentType)}); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	row++
	for _, k := range sortedKeys(res.Record.Fields) {
		if err := f.SetSheetRow(fieldsSheet, fmt.Sprintf("A%d", row), &[]interface{}{k, res.Record.Fields[k]}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
		row++
	}

	if len(res.Record.LineItems) > 0 {
		if _, err := f.NewSheet(lineItemsSheet); err != nil {
			return fmt.Errorf("create sheet: %w", err)
		}
		header := make([]interface{}, len(lineItemColumns))
		for i, c := range lineItemColumns {
			header[i] = c
		}
		if err := f.SetSheetRow(lineItemsSheet, "A1", &header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		for i, li := range res.Record.LineItems {
			cells := []interface{}{li.Description, li.Quantity, li.UnitPrice, li.Amount}
			if err := f.SetSheetRow(lineItemsSheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
