package model

import "github.com/shopspring/decimal"

// BacktestResult is the outcome of replaying a monthly SIP against a fund's
// NAV history.
type BacktestResult struct {
	FundCode      string          `json:"fund_code"`
	Months        int             `json:"months"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	AbsoluteGain  decimal.Decimal `json:"absolute_gain"`
	PercentReturn float64         `json:"percent_return"`
}
