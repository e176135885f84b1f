package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cargoscan/internal/export"
)

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, sampleResult()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Fields")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Field", "Value"}, rows[0])
	assert.Equal(t, []string{"Document Type", "Generic Invoice"}, rows[1])
	assert.Equal(t, []string{"currency", "EUR"}, rows[2])

	items, err := f.GetRows("Line Items")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"Description", "Quantity", "Unit Price", "Amount"}, items[0])
	assert.Equal(t, []string{"Widget", "2", "10.00", "20.00"}, items[1])
}

func TestWriteXLSX_NoLineItemsSheet(t *testing.T) {
	res := sampleResult()
	res.Record.LineItems = nil

	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, res))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Fields"}, f.GetSheetList())
}
