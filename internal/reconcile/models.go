package reconcile

// FieldValue is one extracted value with the extractor's confidence in it.
type FieldValue struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// SourceDocument is the structured output of text extraction for one
// uploaded document. Extraction itself is a black box upstream; this
// package only merges its outputs.
type SourceDocument struct {
	DocumentID string                `json:"document_id"`
	Fields     map[string]FieldValue `json:"fields,omitempty"`

	// Rows carries table-shaped extraction: one entry per product row.
	Rows []map[string]FieldValue `json:"rows,omitempty"`
}

// Canonical product line field names accepted by Apply and row expansion.
const (
	FieldDescription      = "description"
	FieldCategory         = "category"
	FieldTechnologyOrigin = "technology_origin"
	FieldHSCode           = "hs_code"
	FieldQuantity         = "quantity"
	FieldUnit             = "unit"
	FieldUnitPrice        = "unit_price"
	FieldCommercialValue  = "commercial_value"
	FieldEndUsePurpose    = "end_use_purpose"
)
