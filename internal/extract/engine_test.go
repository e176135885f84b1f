package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargoscan/internal/config"
	"cargoscan/internal/domain"
	"cargoscan/internal/extract"
)

const deltaInvoiceText = `DELTA FREIGHT SERVICES
123 Cargo Lane, Newark NJ
Invoice No: 2024-ERP-01
Date: 15/03/2024
AWB: 411-12345678
Shipper: Acme Exports Ltd
Consignee: Globex GmbH
Origin: JFK
Destination: FRA
Gross Weight: 120.5 kg
Chargeable Weight: 135 kg
Payment Terms: Net 30

Air Freight Charges  2  500.00  1,000.00
Fuel Surcharge  1  250.00  250.00

Total Due: 1,250.00 USD`

const aeroflotAWBText = `AEROFLOT
Air Waybill
AWB No: 555-44332211
Flight: SU 102 on 20/04/2024
Airport of Departure: SVO
Airport of Destination: JFK
Shipper: Red Star Exports
Consignee: Liberty Imports Inc
Total 10 pieces
Gross Weight: 85.0 kg
Chargeable Weight: 90.0 kg
Freight Charges: 45,000.00
Currency: RUB
Handling Information: Keep upright`

func newEngine(t *testing.T) *extract.Engine {
	t.Helper()
	return extract.NewEngine(config.ExtractConfig{})
}

func TestExtract_DeltaFreightInvoice(t *testing.T) {
	rec := newEngine(t).Extract(domain.DocTypeDeltaFreightInvoice, deltaInvoiceText)

	assert.Equal(t, "2024-ERP-01", rec.Fields["invoice_number"])
	assert.Equal(t, "15/03/2024", rec.Fields["invoice_date"])
	assert.Equal(t, "411-12345678", rec.Fields["awb_number"])
	assert.Equal(t, "Acme Exports Ltd", rec.Fields["shipper"])
	assert.Equal(t, "Globex GmbH", rec.Fields["consignee"])
	assert.Equal(t, "JFK", rec.Fields["origin"])
	assert.Equal(t, "FRA", rec.Fields["destination"])
	assert.Equal(t, "120.5", rec.Fields["gross_weight_kg"])
	assert.Equal(t, "135", rec.Fields["chargeable_weight_kg"])
	assert.Equal(t, "1,250.00", rec.Fields["total_amount"])
	assert.Equal(t, "USD", rec.Fields["currency"])
	assert.Equal(t, "Net 30", rec.Fields["payment_terms"])

	require.Len(t, rec.LineItems, 2)
	assert.Equal(t, domain.LineItem{
		Description: "Air Freight Charges",
		Quantity:    "2",
		UnitPrice:   "500.00",
		Amount:      "1,000.00",
	}, rec.LineItems[0])
	assert.Equal(t, "Fuel Surcharge", rec.LineItems[1].Description)
}

func TestExtract_AeroflotAirWaybill(t *testing.T) {
	rec := newEngine(t).Extract(domain.DocTypeAeroflotAirWaybill, aeroflotAWBText)

	assert.Equal(t, "555-44332211", rec.Fields["awb_number"])
	assert.Equal(t, "SU 102", rec.Fields["flight_number"])
	assert.Equal(t, "20/04/2024", rec.Fields["flight_date"])
	assert.Equal(t, "SVO", rec.Fields["origin"])
	assert.Equal(t, "JFK", rec.Fields["destination"])
	assert.Equal(t, "Red Star Exports", rec.Fields["shipper"])
	assert.Equal(t, "Liberty Imports Inc", rec.Fields["consignee"])
	assert.Equal(t, "10", rec.Fields["pieces"])
	assert.Equal(t, "85.0", rec.Fields["gross_weight_kg"])
	assert.Equal(t, "90.0", rec.Fields["chargeable_weight_kg"])
	assert.Equal(t, "45,000.00", rec.Fields["freight_charge"])
	assert.Equal(t, "RUB", rec.Fields["currency"])
	assert.Equal(t, "Keep upright", rec.Fields["handling_information"])
	assert.Empty(t, rec.LineItems)
}

func TestExtract_GenericInvoice(t *testing.T) {
	text := `Northwind Traders
INVOICE INV-042
Date: 01/02/2024
2 x Widget @ 10.00 20.00
1 x Gadget @ 5.50 5.50
Grand Total: 25.50 EUR`

	rec := newEngine(t).Extract(domain.DocTypeGenericInvoice, text)

	assert.Equal(t, "INV-042", rec.Fields["invoice_number"])
	assert.Equal(t, "01/02/2024", rec.Fields["invoice_date"])
	assert.Equal(t, "25.50", rec.Fields["total_amount"])
	assert.Equal(t, "EUR", rec.Fields["currency"])
	assert.Equal(t, "Northwind Traders", rec.Fields["vendor_name"])

	require.Len(t, rec.LineItems, 2)
	assert.Equal(t, domain.LineItem{
		Description: "Widget",
		Quantity:    "2",
		UnitPrice:   "10.00",
		Amount:      "20.00",
	}, rec.LineItems[0])
}

func TestExtract_GenericAirWaybill(t *testing.T) {
	text := `Air Waybill
123-45678901
Shipper
Acme Exports Ltd
Consignee
Globex GmbH
Routing: LAX JFK
Total 3 pieces
Weight: 42.5 kg`

	rec := newEngine(t).Extract(domain.DocTypeGenericAirWaybill, text)

	assert.Equal(t, "123-45678901", rec.Fields["awb_number"])
	assert.Equal(t, "Acme Exports Ltd", rec.Fields["shipper"])
	assert.Equal(t, "Globex GmbH", rec.Fields["consignee"])
	assert.Equal(t, "LAX, JFK", rec.Fields["airports_detected"])
	assert.Equal(t, "42.5", rec.Fields["weight_kg"])
	assert.Equal(t, "3", rec.Fields["number_of_pieces"])
}

func TestExtract_MatchAllRespectsLimit(t *testing.T) {
	text := "Airports: AMS CDG DXB FRA HKG LAX SVO"

	rec := newEngine(t).Extract(domain.DocTypeGenericAirWaybill, text)
	assert.Equal(t, "AMS, CDG, DXB, FRA, HKG", rec.Fields["airports_detected"])
}

func TestExtract_AllDocumentedFieldsAlwaysPresent(t *testing.T) {
	e := newEngine(t)

	for _, docType := range []domain.DocumentType{
		domain.DocTypeGenericInvoice,
		domain.DocTypeGenericAirWaybill,
		domain.DocTypeDeltaFreightInvoice,
		domain.DocTypeAeroflotAirWaybill,
	} {
		t.Run(string(docType), func(t *testing.T) {
			fields := e.Fields(docType)
			require.NotEmpty(t, fields)

			// Empty text matches nothing in any table.
			rec := e.Extract(docType, "")
			assert.Len(t, rec.Fields, len(fields))
			for _, f := range fields {
				assert.Equal(t, domain.NotFound, rec.Fields[f], "field %s", f)
			}
			assert.Empty(t, rec.LineItems)
		})
	}
}

func TestExtract_VendorFallbacksDisabledByDefault(t *testing.T) {
	rec := newEngine(t).Extract(domain.DocTypeDeltaFreightInvoice, "no matching content")

	assert.Equal(t, domain.NotFound, rec.Fields["gross_weight_kg"])
	assert.Equal(t, domain.NotFound, rec.Fields["currency"])
}

func TestExtract_VendorFallbacksEnabled(t *testing.T) {
	e := extract.NewEngine(config.ExtractConfig{VendorFallbacks: true})

	rec := e.Extract(domain.DocTypeDeltaFreightInvoice, "no matching content")
	assert.Equal(t, "39", rec.Fields["gross_weight_kg"])
	assert.Equal(t, "USD", rec.Fields["currency"])

	// Fields without a declared fallback still degrade to the sentinel.
	assert.Equal(t, domain.NotFound, rec.Fields["invoice_number"])

	// Fallbacks never override an actual match.
	rec = e.Extract(domain.DocTypeDeltaFreightInvoice, deltaInvoiceText)
	assert.Equal(t, "120.5", rec.Fields["gross_weight_kg"])
	assert.Equal(t, "USD", rec.Fields["currency"])
}

func TestExtract_UnknownTypeYieldsPlaceholderRecord(t *testing.T) {
	e := newEngine(t)

	for _, docType := range []domain.DocumentType{domain.DocTypeUnknown, domain.DocTypeError, "Made Up"} {
		rec := e.Extract(docType, deltaInvoiceText)
		assert.Equal(t, domain.UnknownRecord(), rec)
	}
}

func TestExtract_NormalizesCapturedWhitespace(t *testing.T) {
	// The shipper capture spans to end of line; embedded carriage returns
	// collapse to spaces and the value is trimmed.
	text := "Shipper:   Acme Exports Ltd  \r\nConsignee: Globex GmbH"

	rec := newEngine(t).Extract(domain.DocTypeDeltaFreightInvoice, text)
	assert.Equal(t, "Acme Exports Ltd", rec.Fields["shipper"])
	assert.Equal(t, "Globex GmbH", rec.Fields["consignee"])
}

func TestExtract_Deterministic(t *testing.T) {
	e := newEngine(t)

	first := e.Extract(domain.DocTypeDeltaFreightInvoice, deltaInvoiceText)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Extract(domain.DocTypeDeltaFreightInvoice, deltaInvoiceText))
	}
}

func TestFields_ReturnsTableOrder(t *testing.T) {
	e := newEngine(t)

	fields := e.Fields(domain.DocTypeGenericInvoice)
	assert.Equal(t, []string{"invoice_number", "invoice_date", "total_amount", "currency", "vendor_name"}, fields)

	assert.Nil(t, e.Fields(domain.DocTypeUnknown))
}
