// Package reconcile merges field values extracted from multiple source
// documents into one canonical suggestion per field, flagging disagreement
// between sources. Applying a suggestion to a record is a separate explicit
// step and is idempotent.
package reconcile

import (
	"strings"

	"complyd/internal/domain"
)

// Reconciler merges per-document extractions. It is stateless; document
// order only matters for tie-breaking between equal confidences.
type Reconciler struct{}

func New() *Reconciler {
	return &Reconciler{}
}

// Reconcile produces one FieldSuggestion per field appearing in at least one
// document. The highest-confidence source supplies the canonical value; on
// equal confidence the earlier document wins. ConsistentAcrossSources is
// true iff every supplying source agrees on the normalized value.
func (r *Reconciler) Reconcile(docs []SourceDocument) map[string]domain.FieldSuggestion {
	suggestions := make(map[string]domain.FieldSuggestion)
	seen := make(map[string]string) // field -> first normalized value

	for _, doc := range docs {
		for field, fv := range doc.Fields {
			norm := normalize(fv.Value)

			current, exists := suggestions[field]
			if !exists {
				suggestions[field] = domain.FieldSuggestion{
					FieldName:               field,
					Value:                   fv.Value,
					SourceDocumentID:        doc.DocumentID,
					Confidence:              fv.Confidence,
					ConsistentAcrossSources: true,
				}
				seen[field] = norm
				continue
			}

			if fv.Confidence > current.Confidence {
				current.Value = fv.Value
				current.SourceDocumentID = doc.DocumentID
				current.Confidence = fv.Confidence
			}
			if norm != seen[field] {
				current.ConsistentAcrossSources = false
			}
			suggestions[field] = current
		}
	}

	return suggestions
}

// normalize folds case and whitespace so cosmetic differences between
// extractors do not count as disagreement.
func normalize(v string) string {
	return strings.ToLower(strings.Join(strings.Fields(v), " "))
}
