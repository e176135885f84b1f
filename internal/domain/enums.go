package domain

// FileType represents the allowed media kinds for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// DocumentType is the closed set of labels the classifier can assign.
// Exactly one is assigned per extraction request and it is never
// re-evaluated afterwards.
type DocumentType string

const (
	DocTypeGenericInvoice      DocumentType = "Generic Invoice"
	DocTypeGenericAirWaybill   DocumentType = "Generic Air Waybill"
	DocTypeDeltaFreightInvoice DocumentType = "Delta Freight Invoice"
	DocTypeAeroflotAirWaybill  DocumentType = "Aeroflot Air Waybill"
	DocTypeUnknown             DocumentType = "Unknown"
	DocTypeError               DocumentType = "Error"
)

// ExtractableTypes lists the document types that carry a field-extraction
// table. Unknown and Error short-circuit with placeholder records instead.
var ExtractableTypes = map[DocumentType]bool{
	DocTypeGenericInvoice:      true,
	DocTypeGenericAirWaybill:   true,
	DocTypeDeltaFreightInvoice: true,
	DocTypeAeroflotAirWaybill:  true,
}
