package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complyd/internal/domain"
	dErrors "complyd/pkg/domain-errors"
)

func scores(g, p, e, t int) domain.RiskScores {
	return domain.RiskScores{
		Geographic:  domain.RiskScore{Value: g},
		Product:     domain.RiskScore{Value: p},
		EndUser:     domain.RiskScore{Value: e},
		Transaction: domain.RiskScore{Value: t},
	}
}

func TestAggregate_Mean(t *testing.T) {
	cases := []struct {
		name    string
		in      domain.RiskScores
		overall float64
		tier    domain.RiskTier
	}{
		{"all ones", scores(1, 1, 1, 1), 1.0, domain.RiskTierLow},
		{"all tens", scores(10, 10, 10, 10), 10.0, domain.RiskTierHigh},
		{"mixed mean", scores(2, 4, 6, 8), 5.0, domain.RiskTierMedium},
		{"boundary exactly five is Medium", scores(5, 5, 5, 5), 5.0, domain.RiskTierMedium},
		{"just below five is Low", scores(4, 5, 5, 5), 4.75, domain.RiskTierLow},
		{"just below seven is Medium", scores(7, 7, 7, 6), 6.75, domain.RiskTierMedium},
		{"boundary exactly seven is High", scores(7, 7, 7, 7), 7.0, domain.RiskTierHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Aggregate(tc.in)
			require.NoError(t, err)
			assert.InDelta(t, tc.overall, got.Overall, 1e-9)
			assert.Equal(t, tc.tier, got.Tier)
		})
	}
}

func TestAggregate_MissingScoreDefaultsToMidpoint(t *testing.T) {
	got, err := Aggregate(scores(0, 10, 10, 10))
	require.NoError(t, err)
	assert.InDelta(t, 8.75, got.Overall, 1e-9)

	got, err = Aggregate(domain.RiskScores{})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got.Overall, 1e-9)
	assert.Equal(t, domain.RiskTierMedium, got.Tier)
}

func TestAggregate_RejectsOutOfRange(t *testing.T) {
	_, err := Aggregate(scores(11, 5, -3, 5))
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
	assert.Equal(t, []string{"geographic", "end_user"}, dErrors.FieldsOf(err),
		"every offending category must be reported in one response")
}

func TestEnhancedDDRequired(t *testing.T) {
	t.Run("high tier alone triggers", func(t *testing.T) {
		assert.True(t, EnhancedDDRequired(domain.RiskTierHigh, false))
	})

	t.Run("watchlist match triggers even on low tier", func(t *testing.T) {
		assert.True(t, EnhancedDDRequired(domain.RiskTierLow, true))
	})

	t.Run("low tier with clean screening does not trigger", func(t *testing.T) {
		assert.False(t, EnhancedDDRequired(domain.RiskTierLow, false))
		assert.False(t, EnhancedDDRequired(domain.RiskTierMedium, false))
	})
}
