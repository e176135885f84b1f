package classify

import (
	"regexp"

	"cargoscan/internal/domain"
)

var (
	// 1-2 digits / 1-2 digits / 2-4 digits, separated by / - . or whitespace.
	datePattern = regexp.MustCompile(`\d{1,2}[/\-.\s]\d{1,2}[/\-.\s]\d{2,4}`)

	// IATA air waybill number: 3-digit airline prefix + 8-digit serial.
	awbPattern = regexp.MustCompile(`\b\d{3}[- ]?\d{8}\b`)
)

// vendorRules are checked first; their signatures would otherwise also
// satisfy the generic rules.
func vendorRules() []Rule {
	return []Rule{
		{
			Name:         "delta_freight_invoice",
			DocumentType: domain.DocTypeDeltaFreightInvoice,
			RequireAll: []Signal{
				{Substring: "DELTA FREIGHT SERVICES"},
				{Substring: "Invoice"},
			},
		},
		{
			Name:         "aeroflot_air_waybill",
			DocumentType: domain.DocTypeAeroflotAirWaybill,
			RequireAll: []Signal{
				{Substring: "AEROFLOT"},
				{Substring: "Air Waybill"},
			},
		},
	}
}

func genericRules() []Rule {
	return []Rule{
		{
			Name:         "generic_invoice",
			DocumentType: domain.DocTypeGenericInvoice,
			RequireAll: []Signal{
				{Substring: "invoice", Fold: true},
				{Pattern: datePattern},
			},
		},
		{
			Name:         "generic_air_waybill",
			DocumentType: domain.DocTypeGenericAirWaybill,
			RequireAny: []Signal{
				{Pattern: awbPattern},
				{Substring: "waybill", Fold: true},
				{Substring: "awb", Fold: true},
			},
		},
	}
}
