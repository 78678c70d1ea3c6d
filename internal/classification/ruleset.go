package classification

import "complyd/internal/domain"

// RuleSet is the named configuration driving strategic/AI tagging. Keeping
// the tables explicit lets tests substitute rule sets and keeps regulatory
// updates out of code paths.
type RuleSet struct {
	// StrategicCategories tag a line strategic by category alone.
	StrategicCategories map[domain.Category]bool

	// StrategicHSPrefixes tag a line strategic when its HS code starts
	// with any listed prefix.
	StrategicHSPrefixes []string

	// StrategicEndUseTerms tag a line strategic on a case-insensitive
	// substring match against the declared end use.
	StrategicEndUseTerms []string

	// AICategories tag a line AI-related by category alone. The
	// ai_accelerator_* family is always AI-related regardless of this set.
	AICategories map[domain.Category]bool

	// AIKeywords tag a line AI-related on a case-insensitive substring
	// match against description or end use.
	AIKeywords []string
}

// DefaultRuleSet returns the production rule tables.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		StrategicCategories: map[domain.Category]bool{
			domain.CategoryMilitaryGrade:   true,
			domain.CategoryHighPerformance: true,
		},
		StrategicHSPrefixes: []string{
			"8542.31",
			"8542.32",
			"8542.33",
			"8542.39",
			"8471.50",
			"8486",
			"9013.80",
		},
		StrategicEndUseTerms: []string{
			"military",
			"defense",
		},
		AICategories: map[domain.Category]bool{
			domain.CategoryNeuralProcessing: true,
		},
		AIKeywords: []string{
			"artificial intelligence",
			"machine learning",
			"neural network",
			"deep learning",
			"ai training",
			"ai inference",
			"ai accelerator",
			"gpu",
			"tpu",
			"npu",
			"large language model",
		},
	}
}
