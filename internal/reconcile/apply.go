package reconcile

import (
	"strconv"

	"complyd/internal/domain"
	dErrors "complyd/pkg/domain-errors"
)

// Apply writes the named suggestion's value onto the target line. Applying
// the same suggestion twice yields the same line state. A field with no
// suggestion fails with a no_suggestion code; callers treat that as "leave
// the field unchanged", not as a fatal error.
func Apply(line *domain.ProductLine, suggestions map[string]domain.FieldSuggestion, field string) error {
	suggestion, ok := suggestions[field]
	if !ok {
		return dErrors.Newf(dErrors.CodeNoSuggestion, "no suggestion for field %s", field)
	}
	return applyValue(line, field, suggestion.Value)
}

func applyValue(line *domain.ProductLine, field, value string) error {
	switch field {
	case FieldDescription:
		line.Description = value
	case FieldCategory:
		category, err := domain.ParseCategory(value)
		if err != nil {
			return err
		}
		line.Category = category
	case FieldTechnologyOrigin:
		line.TechnologyOrigin = value
	case FieldHSCode:
		line.HSCode = value
	case FieldQuantity:
		line.Quantity = domain.Amount(domain.CoerceFloat(value))
	case FieldUnit:
		line.Unit = value
	case FieldUnitPrice:
		line.UnitPrice = domain.Amount(domain.CoerceFloat(value))
	case FieldCommercialValue:
		line.CommercialValue = domain.Amount(domain.CoerceFloat(value))
	case FieldEndUsePurpose:
		line.EndUsePurpose = value
	default:
		return dErrors.Newf(dErrors.CodeInvalidInput, "unknown product line field: %s", field)
	}
	return nil
}

// ExpandRows turns a table-shaped extraction into one product line per row.
// Documents without rows expand to nothing; single-field extractions are
// applied to the primary line by the caller instead.
func ExpandRows(doc SourceDocument) []domain.ProductLine {
	lines := make([]domain.ProductLine, 0, len(doc.Rows))
	for i, row := range doc.Rows {
		var line domain.ProductLine
		for field, fv := range row {
			// Unknown columns and unparseable categories are skipped;
			// a partial row is still a row.
			_ = applyValue(&line, field, fv.Value)
		}
		line.SourceRowRef = rowRef(doc.DocumentID, i)
		lines = append(lines, line)
	}
	return lines
}

// ApplyAll applies every suggested field to the target lines: row-bearing
// suggestions were already expanded, so this covers the single-field case
// where only the first/primary line is updated.
func ApplyAll(primary *domain.ProductLine, suggestions map[string]domain.FieldSuggestion) {
	for field := range suggestions {
		// no_suggestion cannot occur here; unknown fields are skipped.
		_ = Apply(primary, suggestions, field)
	}
}

func rowRef(documentID string, index int) string {
	return documentID + "#row-" + strconv.Itoa(index)
}
