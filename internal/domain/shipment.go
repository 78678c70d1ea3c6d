package domain

// ShipmentAggregate is derived entirely from a shipment's ordered product
// lines and recomputed on every line mutation.
type ShipmentAggregate struct {
	TotalValue        float64  `json:"total_value"`
	TotalQuantity     float64  `json:"total_quantity"`
	Currency          string   `json:"currency"`
	StrategicCount    int      `json:"strategic_count"`
	AICount           int      `json:"ai_count"`
	Priority          Priority `json:"priority"`
	InsuranceRequired bool     `json:"insurance_required"`
}

// FieldSuggestion is one reconciled field candidate for the owning form to
// apply. ConsistentAcrossSources is false when any supplying document
// disagreed on the normalized value.
type FieldSuggestion struct {
	FieldName               string  `json:"field_name"`
	Value                   string  `json:"value"`
	SourceDocumentID        string  `json:"source_document_id"`
	Confidence              float64 `json:"confidence"`
	ConsistentAcrossSources bool    `json:"consistent_across_sources"`
}
