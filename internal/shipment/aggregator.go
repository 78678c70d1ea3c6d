// Package shipment derives shipment-level totals from product lines and
// applies the value escalation rule. Recompute runs after every line
// mutation, not only on save.
package shipment

import (
	"complyd/internal/classification"
	"complyd/internal/domain"
)

// EscalationThreshold is the total value (in the shipment's configured
// currency, no conversion applied) above which handling escalates.
const EscalationThreshold = 100000.0

// Aggregator recomputes shipment aggregates. Classification flags are
// re-derived during every recompute so stale flags can never leak into the
// counts.
type Aggregator struct {
	classifier *classification.Engine
	threshold  float64
}

// Option configures the Aggregator.
type Option func(*Aggregator)

// WithThreshold overrides the escalation threshold, for tests.
func WithThreshold(v float64) Option {
	return func(a *Aggregator) {
		if v > 0 {
			a.threshold = v
		}
	}
}

func New(classifier *classification.Engine, opts ...Option) *Aggregator {
	a := &Aggregator{
		classifier: classifier,
		threshold:  EscalationThreshold,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Recompute derives totals and applies the escalation rule.
//
// Escalation crossing the threshold upgrades Standard to Urgent but leaves
// an operator-chosen Express untouched, and re-asserts insuranceRequired on
// every qualifying recompute. The re-assert matches the legacy behavior
// even when an operator unset the flag by hand; see DESIGN.md before
// changing it.
func (a *Aggregator) Recompute(lines []domain.ProductLine, currency string, priorPriority domain.Priority, priorInsurance bool) domain.ShipmentAggregate {
	agg := domain.ShipmentAggregate{
		Currency:          currency,
		Priority:          priorPriority,
		InsuranceRequired: priorInsurance,
	}
	if agg.Priority == "" {
		agg.Priority = domain.PriorityStandard
	}

	for i := range lines {
		line := &lines[i]
		a.classifier.Tag(line)

		agg.TotalValue += line.CommercialValue.Float()
		agg.TotalQuantity += line.Quantity.Float()
		if line.IsStrategic {
			agg.StrategicCount++
		}
		if line.IsAIRelated {
			agg.AICount++
		}
	}

	if agg.TotalValue > a.threshold {
		if agg.Priority == domain.PriorityStandard {
			agg.Priority = domain.PriorityUrgent
		}
		agg.InsuranceRequired = true
	}

	return agg
}
