package model

import "strings"

// Category groups funds by asset class.
type Category string

const (
	CategoryEquity   Category = "Equity"
	CategoryHybrid   Category = "Hybrid"
	CategorySafeDebt Category = "Safe_Debt"
	CategoryIndex    Category = "Index"
	CategoryDebt     Category = "Debt"
)

// RiskGrade is the published risk rating of a fund.
type RiskGrade string

const (
	RiskLow      RiskGrade = "Low"
	RiskModerate RiskGrade = "Moderate"
	RiskHigh     RiskGrade = "High"
)

// FundRecord is one cleaned row of the fund universe. Immutable after load.
type FundRecord struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	RiskGrade RiskGrade `json:"risk_grade"`
	StdDev    float64   `json:"std_dev"`
	FreqScore int       `json:"freq_score"`
	AvgReturn float64   `json:"avg_return"`
	IsSafe    bool      `json:"is_safe"`
}

// Sponsor returns the AMC token: the first whitespace-delimited word of the
// fund name, lowercased so comparisons are case-insensitive.
func (f FundRecord) Sponsor() string {
	fields := strings.Fields(f.Name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
