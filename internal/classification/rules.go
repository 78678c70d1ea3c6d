// Package classification tags product lines as strategic and/or AI-related.
// Classification is a pure function of the line's current field values and
// must be re-run after every field edit; derived flags are never cached.
package classification

import (
	"strings"

	"complyd/internal/domain"
)

// Flags are the derived classification outputs for one product line.
type Flags struct {
	IsStrategic bool `json:"is_strategic"`
	IsAIRelated bool `json:"is_ai_related"`
}

// Engine evaluates the rule set against product lines. It holds no mutable
// state; the same input always yields the same output.
type Engine struct {
	rules RuleSet
}

// NewEngine creates an engine over the given rule set.
func NewEngine(rules RuleSet) *Engine {
	return &Engine{rules: rules}
}

// Classify derives the strategic and AI flags for a line.
func (e *Engine) Classify(line domain.ProductLine) Flags {
	return Flags{
		IsStrategic: e.isStrategic(line),
		IsAIRelated: e.isAIRelated(line),
	}
}

// Tag recomputes and stores the derived flags on the line in place.
func (e *Engine) Tag(line *domain.ProductLine) {
	flags := e.Classify(*line)
	line.IsStrategic = flags.IsStrategic
	line.IsAIRelated = flags.IsAIRelated
}

func (e *Engine) isStrategic(line domain.ProductLine) bool {
	if e.rules.StrategicCategories[line.Category] || line.Category.IsAIAccelerator() {
		return true
	}

	hs := strings.TrimSpace(line.HSCode)
	for _, prefix := range e.rules.StrategicHSPrefixes {
		if strings.HasPrefix(hs, prefix) {
			return true
		}
	}

	endUse := strings.ToLower(line.EndUsePurpose)
	for _, term := range e.rules.StrategicEndUseTerms {
		if strings.Contains(endUse, term) {
			return true
		}
	}
	return false
}

func (e *Engine) isAIRelated(line domain.ProductLine) bool {
	if e.rules.AICategories[line.Category] || line.Category.IsAIAccelerator() {
		return true
	}

	haystack := strings.ToLower(line.Description + " " + line.EndUsePurpose)
	for _, kw := range e.rules.AIKeywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
