package extract

import (
	"regexp"

	"cargoscan/internal/domain"
)

func genericAirWaybillTable() Table {
	return Table{
		DocumentType: domain.DocTypeGenericAirWaybill,
		Fields: []FieldMatcher{
			{
				Field:   "awb_number",
				Pattern: awbRe,
				Group:   0,
			},
			{
				Field:   "shipper",
				Pattern: regexp.MustCompile(`(?i)shipper.*?\n(.+)`),
				Group:   1,
			},
			{
				Field:   "consignee",
				Pattern: regexp.MustCompile(`(?i)consignee.*?\n(.+)`),
				Group:   1,
			},
			{
				Field:   "airports_detected",
				Pattern: regexp.MustCompile(`\b[A-Z]{3}\b`),
				Group:   0,
				Mode:    MatchAll,
				Limit:   5,
			},
			{
				Field:   "weight_kg",
				Pattern: regexp.MustCompile(`(?i)(\d+\.?\d*)\s*kgs?\b`),
				Group:   1,
			},
			{
				Field:   "number_of_pieces",
				Pattern: regexp.MustCompile(`(?i)(\d+)\s*(?:pieces|pcs)\b`),
				Group:   1,
			},
		},
	}
}
