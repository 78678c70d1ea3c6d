// Package risk folds the four category scores into one overall score and
// tier, and evaluates the enhanced due diligence triggers.
package risk

import (
	"complyd/internal/domain"
	dErrors "complyd/pkg/domain-errors"
)

// neutralMidpoint substitutes for a category that has not been assessed
// yet, so the aggregate is always defined over all four categories.
const neutralMidpoint = 5

// Tier boundaries on the overall score.
const (
	mediumThreshold = 5.0
	highThreshold   = 7.0
)

// Assessment is the derived risk output for a score quadruple.
type Assessment struct {
	Overall float64         `json:"overall"`
	Tier    domain.RiskTier `json:"tier"`
}

// Aggregate computes the equal-weighted mean of the four category scores
// and buckets it into a tier. A zero (unset) category contributes the
// neutral midpoint; a value outside [1,10] is a validation error naming
// every offending category at once.
func Aggregate(scores domain.RiskScores) (Assessment, error) {
	values := [4]int{
		scores.Geographic.Value,
		scores.Product.Value,
		scores.EndUser.Value,
		scores.Transaction.Value,
	}
	names := [4]string{"geographic", "product", "end_user", "transaction"}

	var invalid []string
	sum := 0
	for i, v := range values {
		if v == 0 {
			sum += neutralMidpoint
			continue
		}
		if v < 1 || v > 10 {
			invalid = append(invalid, names[i])
			continue
		}
		sum += v
	}
	if len(invalid) > 0 {
		return Assessment{}, dErrors.NewWithFields(dErrors.CodeValidation,
			"risk scores must be between 1 and 10", invalid)
	}

	overall := float64(sum) / 4.0
	return Assessment{Overall: overall, Tier: TierFor(overall)}, nil
}

// TierFor buckets an overall score: >=7 High, >=5 Medium, below Low.
func TierFor(overall float64) domain.RiskTier {
	switch {
	case overall >= highThreshold:
		return domain.RiskTierHigh
	case overall >= mediumThreshold:
		return domain.RiskTierMedium
	default:
		return domain.RiskTierLow
	}
}

// EnhancedDDRequired reports whether the enhanced due diligence gate fires:
// a High tier or any watchlist match. The flag is one-way at the record
// level; callers OR this into the stored value and never clear it here.
func EnhancedDDRequired(tier domain.RiskTier, hasWatchlistMatch bool) bool {
	return tier == domain.RiskTierHigh || hasWatchlistMatch
}
