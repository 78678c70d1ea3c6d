package shipment

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"complyd/internal/classification"
	"complyd/internal/domain"
)

type AggregatorSuite struct {
	suite.Suite
	aggregator *Aggregator
}

func TestAggregatorSuite(t *testing.T) {
	suite.Run(t, new(AggregatorSuite))
}

func (s *AggregatorSuite) SetupTest() {
	s.aggregator = New(classification.NewEngine(classification.DefaultRuleSet()))
}

func (s *AggregatorSuite) TestTotals() {
	lines := []domain.ProductLine{
		{Category: domain.CategoryStandardIC, CommercialValue: 40000, Quantity: 100},
		{Category: domain.CategoryStandardIC, CommercialValue: 35000, Quantity: 50},
		{Category: domain.CategoryAIAcceleratorGPU, CommercialValue: 30000, Quantity: 10},
	}

	agg := s.aggregator.Recompute(lines, "USD", domain.PriorityStandard, false)

	s.Equal(105000.0, agg.TotalValue)
	s.Equal(160.0, agg.TotalQuantity)
	s.Equal("USD", agg.Currency)
	s.Equal(1, agg.AICount)
	s.Equal(1, agg.StrategicCount, "ai accelerator category is also strategic")
}

func (s *AggregatorSuite) TestSubstitutedThreshold() {
	aggregator := New(classification.NewEngine(classification.DefaultRuleSet()),
		WithThreshold(50000))
	lines := []domain.ProductLine{
		{Category: domain.CategoryStandardIC, CommercialValue: 50001},
	}

	agg := aggregator.Recompute(lines, "USD", domain.PriorityStandard, false)
	s.Equal(domain.PriorityUrgent, agg.Priority)
	s.True(agg.InsuranceRequired)

	// The default threshold would not have fired at this value.
	agg = s.aggregator.Recompute(lines, "USD", domain.PriorityStandard, false)
	s.Equal(domain.PriorityStandard, agg.Priority)
	s.False(agg.InsuranceRequired)
}

func (s *AggregatorSuite) TestEscalation() {
	expensive := []domain.ProductLine{
		{Category: domain.CategoryStandardIC, CommercialValue: 100001},
	}

	s.Run("standard escalates to urgent above threshold", func() {
		agg := s.aggregator.Recompute(expensive, "USD", domain.PriorityStandard, false)
		s.Equal(domain.PriorityUrgent, agg.Priority)
		s.True(agg.InsuranceRequired)
	})

	s.Run("express is left untouched", func() {
		agg := s.aggregator.Recompute(expensive, "USD", domain.PriorityExpress, false)
		s.Equal(domain.PriorityExpress, agg.Priority)
		s.True(agg.InsuranceRequired)
	})

	s.Run("exactly at threshold does not escalate", func() {
		at := []domain.ProductLine{{Category: domain.CategoryStandardIC, CommercialValue: 100000}}
		agg := s.aggregator.Recompute(at, "USD", domain.PriorityStandard, false)
		s.Equal(domain.PriorityStandard, agg.Priority)
		s.False(agg.InsuranceRequired)
	})

	s.Run("insurance is re-asserted on every qualifying recompute", func() {
		// Operator unset insurance by hand; the legacy rule re-asserts it.
		agg := s.aggregator.Recompute(expensive, "USD", domain.PriorityUrgent, false)
		s.True(agg.InsuranceRequired)
	})

	s.Run("below threshold preserves prior values", func() {
		cheap := []domain.ProductLine{{Category: domain.CategoryStandardIC, CommercialValue: 500}}
		agg := s.aggregator.Recompute(cheap, "USD", domain.PriorityUrgent, true)
		s.Equal(domain.PriorityUrgent, agg.Priority, "recompute never downgrades")
		s.True(agg.InsuranceRequired)
	})
}

func (s *AggregatorSuite) TestCoercion() {
	s.Run("empty lines yield a zero aggregate", func() {
		agg := s.aggregator.Recompute(nil, "EUR", "", false)
		s.Equal(0.0, agg.TotalValue)
		s.Equal(domain.PriorityStandard, agg.Priority)
	})
}

func (s *AggregatorSuite) TestFlagsRederivedDuringRecompute() {
	lines := []domain.ProductLine{
		{
			Category: domain.CategoryConsumerElectronics,
			// Stale flags from an earlier categorization must not survive.
			IsStrategic: true,
			IsAIRelated: true,
		},
	}

	agg := s.aggregator.Recompute(lines, "USD", domain.PriorityStandard, false)
	s.Equal(0, agg.StrategicCount)
	s.Equal(0, agg.AICount)
	s.False(lines[0].IsStrategic)
	s.False(lines[0].IsAIRelated)
}

func (s *AggregatorSuite) TestEndToEndScenario() {
	lines := []domain.ProductLine{
		{Category: domain.CategoryStandardIC, Description: "controller board", CommercialValue: 40000},
		{Category: domain.CategoryStandardIC, Description: "power module", CommercialValue: 35000},
		{Category: domain.CategoryAIAcceleratorGPU, Description: "general purpose chip", CommercialValue: 30000},
	}

	agg := s.aggregator.Recompute(lines, "USD", domain.PriorityStandard, false)

	s.Equal(105000.0, agg.TotalValue)
	s.Equal(1, agg.AICount)
	s.Equal(domain.PriorityUrgent, agg.Priority)
	s.True(agg.InsuranceRequired)
	s.True(lines[2].IsAIRelated, "category rule fires independent of description text")
}
