package strategy

import (
	"WealthPlanner/internal/model"
	"WealthPlanner/internal/universe"
)

// Risk buckets a goal's time horizon into a planning profile.
type Risk int

const (
	Conservative Risk = iota
	Balanced
	Aggressive
)

// ForHorizon maps a horizon in years to its risk profile.
func ForHorizon(years int) Risk {
	switch {
	case years <= 3:
		return Conservative
	case years <= 7:
		return Balanced
	default:
		return Aggressive
	}
}

// Label returns the display name of the profile.
func (r Risk) Label() string {
	switch r {
	case Conservative:
		return "Conservative"
	case Balanced:
		return "Balanced"
	default:
		return "Aggressive"
	}
}

// AnnualReturn returns the assumed annual return in percent for the profile.
// Policy constants, kept exact for plan compatibility.
func (r Risk) AnnualReturn() float64 {
	switch r {
	case Conservative:
		return 7
	case Balanced:
		return 10
	default:
		return 13
	}
}

// NamePolicy holds the keyword lists the profile filters match fund names
// against.
type NamePolicy struct {
	// BalancedNames admits funds into the Balanced pool.
	BalancedNames universe.KeywordPredicate
	// AggressiveExclusions keeps debt-flavored funds out of the Aggressive pool.
	AggressiveExclusions universe.KeywordPredicate
	// ConservativeExclusions keeps equity funds out of the low-volatility
	// Conservative pool.
	ConservativeExclusions universe.KeywordPredicate
}

// Default profile keyword lists.
var (
	DefaultBalancedNames          = []string{"hybrid", "large", "balanced", "bluechip"}
	DefaultAggressiveExclusions   = []string{"debt", "bond", "income"}
	DefaultConservativeExclusions = []string{"equity"}
)

// NewNamePolicy builds the profile name policy, substituting defaults for
// empty lists.
func NewNamePolicy(balanced, aggressiveExcl, conservativeExcl []string) NamePolicy {
	return NamePolicy{
		BalancedNames:          universe.NewKeywordPredicate("balanced_names", balanced, DefaultBalancedNames),
		AggressiveExclusions:   universe.NewKeywordPredicate("aggressive_exclusions", aggressiveExcl, DefaultAggressiveExclusions),
		ConservativeExclusions: universe.NewKeywordPredicate("conservative_exclusions", conservativeExcl, DefaultConservativeExclusions),
	}
}

// DefaultNamePolicy returns the policy with all default keyword lists.
func DefaultNamePolicy() NamePolicy {
	return NewNamePolicy(nil, nil, nil)
}

// Candidates filters and ranks the universe for the profile. An empty result
// is returned as-is; there is no fallback pool.
func Candidates(store *universe.Store, r Risk, p NamePolicy) []model.FundRecord {
	switch r {
	case Conservative:
		return store.Select(
			func(f model.FundRecord) bool {
				return f.Category == model.CategorySafeDebt ||
					(f.StdDev < 3 && !p.ConservativeExclusions.Match(f.Name))
			},
			func(a, b model.FundRecord) bool { return a.StdDev < b.StdDev },
		)
	case Balanced:
		return store.Select(
			func(f model.FundRecord) bool {
				return f.IsSafe && f.RiskGrade != model.RiskHigh && p.BalancedNames.Match(f.Name)
			},
			func(a, b model.FundRecord) bool { return a.FreqScore > b.FreqScore },
		)
	default:
		return store.Select(
			func(f model.FundRecord) bool {
				return f.IsSafe && f.Category == model.CategoryEquity &&
					!p.AggressiveExclusions.Match(f.Name)
			},
			func(a, b model.FundRecord) bool {
				if a.FreqScore != b.FreqScore {
					return a.FreqScore > b.FreqScore
				}
				return a.AvgReturn > b.AvgReturn
			},
		)
	}
}
