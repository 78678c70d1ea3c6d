package domain

import (
	"strings"

	dErrors "complyd/pkg/domain-errors"
)

// Category classifies a product line into a semiconductor/product class.
//
// Usage: construct via ParseCategory at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type Category string

const (
	CategoryStandardIC          Category = "standard_integrated_circuit"
	CategoryConsumerElectronics Category = "consumer_electronics"
	CategoryMemoryStorage       Category = "memory_storage"
	CategoryTelecomEquipment    Category = "telecom_equipment"
	CategoryMilitaryGrade       Category = "military_grade"
	CategoryHighPerformance     Category = "high_performance_computing"
	CategoryAIAcceleratorGPU    Category = "ai_accelerator_gpu_tpu_npu"
	CategoryAIAcceleratorFPGA   Category = "ai_accelerator_fpga"
	CategoryNeuralProcessing    Category = "neural_processing"
)

// aiAcceleratorPrefix groups the ai_accelerator_* category family.
const aiAcceleratorPrefix = "ai_accelerator_"

var validCategories = map[Category]bool{
	CategoryStandardIC:          true,
	CategoryConsumerElectronics: true,
	CategoryMemoryStorage:       true,
	CategoryTelecomEquipment:    true,
	CategoryMilitaryGrade:       true,
	CategoryHighPerformance:     true,
	CategoryAIAcceleratorGPU:    true,
	CategoryAIAcceleratorFPGA:   true,
	CategoryNeuralProcessing:    true,
}

// ParseCategory constructs a Category from external input.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "category cannot be empty")
	}
	c := Category(s)
	if !c.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown category: %s", s)
	}
	return c, nil
}

// IsValid checks if the category is one of the supported enum values.
func (c Category) IsValid() bool {
	return validCategories[c]
}

// IsAIAccelerator reports membership in the ai_accelerator_* family.
func (c Category) IsAIAccelerator() bool {
	return strings.HasPrefix(string(c), aiAcceleratorPrefix)
}

func (c Category) String() string {
	return string(c)
}

// Priority is the shipment handling priority.
type Priority string

const (
	PriorityStandard Priority = "Standard"
	PriorityUrgent   Priority = "Urgent"
	PriorityExpress  Priority = "Express"
)

var validPriorities = map[Priority]bool{
	PriorityStandard: true,
	PriorityUrgent:   true,
	PriorityExpress:  true,
}

// ParsePriority constructs a Priority from external input. Empty input
// defaults to Standard, matching form behavior upstream.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityStandard, nil
	}
	p := Priority(s)
	if !validPriorities[p] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown priority: %s", s)
	}
	return p, nil
}

func (p Priority) String() string {
	return string(p)
}

// ProductLine is a single declared item on a shipment. IsStrategic and
// IsAIRelated are derived by the classification rules from the current field
// values; they are never hand-set independently of them.
type ProductLine struct {
	ID               string   `json:"id"`
	Description      string   `json:"description"`
	Category         Category `json:"category"`
	TechnologyOrigin string   `json:"technology_origin"`
	HSCode           string   `json:"hs_code"`
	Quantity         Amount   `json:"quantity"`
	Unit             string   `json:"unit"`
	UnitPrice        Amount   `json:"unit_price"`
	CommercialValue  Amount   `json:"commercial_value"`
	EndUsePurpose    string   `json:"end_use_purpose"`
	IsStrategic      bool     `json:"is_strategic"`
	IsAIRelated      bool     `json:"is_ai_related"`

	// SourceRowRef points at the originating document row when the line
	// was expanded from a table extraction.
	SourceRowRef string `json:"source_row_ref,omitempty"`
}
