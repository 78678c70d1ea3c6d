package reconcile

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"complyd/internal/domain"
	dErrors "complyd/pkg/domain-errors"
)

type ReconcilerSuite struct {
	suite.Suite
	reconciler *Reconciler
}

func TestReconcilerSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerSuite))
}

func (s *ReconcilerSuite) SetupTest() {
	s.reconciler = New()
}

func (s *ReconcilerSuite) TestReconcile() {
	s.Run("highest confidence source wins", func() {
		docs := []SourceDocument{
			{DocumentID: "invoice-1", Fields: map[string]FieldValue{
				FieldHSCode: {Value: "8542.31", Confidence: 0.6},
			}},
			{DocumentID: "packing-list-1", Fields: map[string]FieldValue{
				FieldHSCode: {Value: "8542.39", Confidence: 0.9},
			}},
		}

		suggestions := s.reconciler.Reconcile(docs)
		s.Require().Contains(suggestions, FieldHSCode)
		s.Equal("8542.39", suggestions[FieldHSCode].Value)
		s.Equal("packing-list-1", suggestions[FieldHSCode].SourceDocumentID)
		s.False(suggestions[FieldHSCode].ConsistentAcrossSources)
	})

	s.Run("agreeing sources are marked consistent", func() {
		docs := []SourceDocument{
			{DocumentID: "a", Fields: map[string]FieldValue{
				FieldDescription: {Value: "GPU Module", Confidence: 0.8},
			}},
			{DocumentID: "b", Fields: map[string]FieldValue{
				FieldDescription: {Value: "gpu  module", Confidence: 0.7},
			}},
		}

		suggestions := s.reconciler.Reconcile(docs)
		s.True(suggestions[FieldDescription].ConsistentAcrossSources)
		s.Equal("GPU Module", suggestions[FieldDescription].Value)
	})

	s.Run("equal confidence keeps the earlier document", func() {
		docs := []SourceDocument{
			{DocumentID: "first", Fields: map[string]FieldValue{
				FieldUnit: {Value: "pcs", Confidence: 0.5},
			}},
			{DocumentID: "second", Fields: map[string]FieldValue{
				FieldUnit: {Value: "pcs", Confidence: 0.5},
			}},
		}

		suggestions := s.reconciler.Reconcile(docs)
		s.Equal("first", suggestions[FieldUnit].SourceDocumentID)
	})

	s.Run("fields from a single source are consistent", func() {
		docs := []SourceDocument{
			{DocumentID: "only", Fields: map[string]FieldValue{
				FieldEndUsePurpose: {Value: "data center build-out", Confidence: 0.4},
			}},
		}

		suggestions := s.reconciler.Reconcile(docs)
		s.True(suggestions[FieldEndUsePurpose].ConsistentAcrossSources)
	})

	s.Run("no documents yields no suggestions", func() {
		s.Empty(s.reconciler.Reconcile(nil))
	})
}

func (s *ReconcilerSuite) TestApply() {
	suggestions := map[string]domain.FieldSuggestion{
		FieldCommercialValue: {FieldName: FieldCommercialValue, Value: "40,000", Confidence: 0.9},
		FieldCategory:        {FieldName: FieldCategory, Value: "ai_accelerator_gpu_tpu_npu", Confidence: 0.8},
	}

	s.Run("applying twice is idempotent", func() {
		var line domain.ProductLine
		s.Require().NoError(Apply(&line, suggestions, FieldCommercialValue))
		once := line
		s.Require().NoError(Apply(&line, suggestions, FieldCommercialValue))
		s.Equal(once, line)
		s.Equal(40000.0, line.CommercialValue.Float())
	})

	s.Run("category values are validated", func() {
		var line domain.ProductLine
		bad := map[string]domain.FieldSuggestion{
			FieldCategory: {FieldName: FieldCategory, Value: "not_a_category"},
		}
		err := Apply(&line, bad, FieldCategory)
		s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
	})

	s.Run("missing field returns no_suggestion", func() {
		var line domain.ProductLine
		err := Apply(&line, suggestions, FieldHSCode)
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeNoSuggestion))
		s.Equal(domain.ProductLine{}, line, "line must be left unchanged")
	})
}

func (s *ReconcilerSuite) TestApplyAll() {
	suggestions := map[string]domain.FieldSuggestion{
		FieldDescription:     {FieldName: FieldDescription, Value: "GPU accelerator module", Confidence: 0.9},
		FieldCommercialValue: {FieldName: FieldCommercialValue, Value: "35,000", Confidence: 0.8},
		"page_number":        {FieldName: "page_number", Value: "3", Confidence: 0.7},
	}

	s.Run("updates only the primary line", func() {
		primary := domain.ProductLine{ID: "line-1", Description: "stale"}
		secondary := domain.ProductLine{ID: "line-2"}

		ApplyAll(&primary, suggestions)

		s.Equal("GPU accelerator module", primary.Description)
		s.Equal(35000.0, primary.CommercialValue.Float())
		s.Equal(domain.ProductLine{ID: "line-2"}, secondary)
	})

	s.Run("unknown fields are skipped silently", func() {
		var line domain.ProductLine
		ApplyAll(&line, suggestions)
		s.Equal("GPU accelerator module", line.Description)
	})

	s.Run("applying twice is idempotent", func() {
		var line domain.ProductLine
		ApplyAll(&line, suggestions)
		once := line
		ApplyAll(&line, suggestions)
		s.Equal(once, line)
	})
}

func (s *ReconcilerSuite) TestExpandRows() {
	doc := SourceDocument{
		DocumentID: "invoice-9",
		Rows: []map[string]FieldValue{
			{
				FieldDescription:     {Value: "GPU board", Confidence: 0.9},
				FieldQuantity:        {Value: "10", Confidence: 0.9},
				FieldCommercialValue: {Value: "40000", Confidence: 0.9},
			},
			{
				FieldDescription: {Value: "Cooling assembly", Confidence: 0.8},
				FieldQuantity:    {Value: "n/a", Confidence: 0.2},
			},
		},
	}

	lines := ExpandRows(doc)
	s.Require().Len(lines, 2)
	s.Equal("GPU board", lines[0].Description)
	s.Equal(10.0, lines[0].Quantity.Float())
	s.Equal("invoice-9#row-0", lines[0].SourceRowRef)
	s.Equal(0.0, lines[1].Quantity.Float(), "unparseable quantity coerces to zero")
	s.Equal("invoice-9#row-1", lines[1].SourceRowRef)
}
