package planner

import (
	"math"

	"github.com/shopspring/decimal"
)

// LTCG tax policy constants: gains above the exemption are taxed at 12.5%.
// Keep exact; plans produced elsewhere must match.
var (
	taxExemptGains = decimal.NewFromInt(125000)
	taxRate        = decimal.NewFromFloat(0.125)
)

// SolveContribution returns the monthly SIP that grows to target over the
// horizon at the assumed annual return, using the ordinary-annuity
// future-value identity. A zero return degenerates to target/n.
func SolveContribution(target decimal.Decimal, horizonYears int, annualReturnPct float64) decimal.Decimal {
	n := horizonYears * 12
	if annualReturnPct == 0 {
		return target.Div(decimal.NewFromInt(int64(n))).Round(2)
	}
	r := annualReturnPct / 1200
	factor := r / (math.Pow(1+r, float64(n)) - 1)
	return target.Mul(decimal.NewFromFloat(factor)).Round(2)
}

// EstimateTax estimates the LTCG tax due at the goal date: gains are the
// target minus everything contributed, taxed above the exemption.
func EstimateTax(target, contribution decimal.Decimal, horizonYears int) decimal.Decimal {
	n := decimal.NewFromInt(int64(horizonYears * 12))
	gains := target.Sub(contribution.Mul(n))
	if gains.LessThanOrEqual(taxExemptGains) {
		return decimal.Zero
	}
	return gains.Sub(taxExemptGains).Mul(taxRate).Round(2)
}
