package extract

import (
	"regexp"

	"cargoscan/internal/domain"
)

// aeroflotAirWaybillTable targets Aeroflot's waybill template. 555 is the
// carrier's IATA airline prefix; SU its flight designator.
func aeroflotAirWaybillTable() Table {
	return Table{
		DocumentType: domain.DocTypeAeroflotAirWaybill,
		Fields: []FieldMatcher{
			{
				Field:   "awb_number",
				Pattern: regexp.MustCompile(`\b555[- ]?\d{8}\b`),
				Group:   0,
			},
			{
				Field:   "flight_number",
				Pattern: regexp.MustCompile(`\b(SU\s?\d{3,4})\b`),
				Group:   1,
			},
			{
				Field:   "flight_date",
				Pattern: dateRe,
				Group:   1,
			},
			{
				Field:    "origin",
				Pattern:  regexp.MustCompile(`(?i)(?:airport\s*of\s*departure|origin)\s*:?\s*([A-Z]{3})\b`),
				Group:    1,
				Fallback: "SVO",
			},
			{
				Field:   "destination",
				Pattern: regexp.MustCompile(`(?i)(?:airport\s*of\s*destination|destination)\s*:?\s*([A-Z]{3})\b`),
				Group:   1,
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
				Field:   "pieces",
				Pattern: regexp.MustCompile(`(?i)(\d+)\s*(?:pieces|pcs)\b`),
				Group:   1,
			},
			{
				Field:   "gross_weight_kg",
				Pattern: regexp.MustCompile(`(?i)gross\s*weight\s*:?\s*([\d.]+)\s*kgs?\b`),
				Group:   1,
			},
			{
				Field:   "chargeable_weight_kg",
				Pattern: regexp.MustCompile(`(?i)chargeable\s*weight\s*:?\s*([\d.]+)\s*kgs?\b`),
				Group:   1,
			},
			{
				Field:   "freight_charge",
				Pattern: regexp.MustCompile(`(?i)(?:freight\s*charges?|total\s*charge)[^\d]*([\d,]+\.\d{2})`),
				Group:   1,
			},
			{
				Field:    "currency",
				Pattern:  currencyRe,
				Group:    1,
				Fallback: "RUB",
			},
			{
				Field:   "handling_information",
				Pattern: regexp.MustCompile(`(?i)handling\s*information\s*:?\s*([^\n]+)`),
				Group:   1,
			},
		},
	}
}
