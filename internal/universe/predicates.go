package universe

import "strings"

// KeywordPredicate matches a fund name against a keyword list, case-insensitive.
// Predicates are named so policy changes stay out of the selection code.
type KeywordPredicate struct {
	Name     string
	Keywords []string
}

// NewKeywordPredicate builds a predicate, falling back to defaults when the
// keyword list is empty.
func NewKeywordPredicate(name string, keywords, defaults []string) KeywordPredicate {
	if len(keywords) == 0 {
		keywords = defaults
	}
	return KeywordPredicate{Name: name, Keywords: keywords}
}

// Match reports whether the lowercased fund name contains any keyword.
func (p KeywordPredicate) Match(fundName string) bool {
	lower := strings.ToLower(fundName)
	for _, k := range p.Keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Default policy keyword lists. All matching is against lowercased names.
var (
	// DefaultShareClassKeywords marks non-growth share-class variants.
	DefaultShareClassKeywords = []string{"bonus", "dividend"}

	// DefaultDefunctKeywords marks schemes that no longer accept fresh SIPs:
	// sponsors that renamed or exited, and closed-ended or fixed-tenure
	// structures.
	DefaultDefunctKeywords = []string{
		"reliance", "l&t", "fidelity", "essel", "principal",
		"closed end", "close ended", "interval", "series",
		"capital protection", "fixed tenure", "fixed maturity",
		"dual advantage",
	}

	// DefaultRiskySectorKeywords marks concentrated sector, thematic, and
	// commodity bets that are excluded from safe equity recommendations.
	DefaultRiskySectorKeywords = []string{
		"sector", "thematic", "international", "global",
		"gold", "commodity", "psu", "infra", "tech",
	}
)
