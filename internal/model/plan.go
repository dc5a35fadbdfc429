package model

import "github.com/shopspring/decimal"

// Goal is one user target the planner solves for. Amounts are in rupees.
type Goal struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	HorizonYears int             `json:"horizon_years"`
}

// RecommendationSet is the per-goal output of a planning run.
type RecommendationSet struct {
	GoalName             string          `json:"goal_name"`
	TargetAmount         decimal.Decimal `json:"target_amount"`
	HorizonYears         int             `json:"horizon_years"`
	StrategyLabel        string          `json:"strategy"`
	AssumedAnnualReturn  float64         `json:"assumed_annual_return"`
	RequiredContribution decimal.Decimal `json:"required_contribution"`
	EstimatedTax         decimal.Decimal `json:"estimated_tax"`
	SelectedFunds        []FundRecord    `json:"selected_funds"`
}

// PlanResult is the full response for one planning run.
type PlanResult struct {
	Recommendations []RecommendationSet `json:"recommendations"`
	TotalMonthly    decimal.Decimal     `json:"total_monthly"`
	Document        PlanDocument        `json:"document"`
}

// PlanDocument is the flat per-goal summary handed to the PDF renderer.
// Amounts are pre-formatted for display.
type PlanDocument struct {
	Lines      []DocumentLine `json:"lines"`
	GrandTotal string         `json:"grand_total"`
}

// DocumentLine summarizes one goal for the exported plan document.
type DocumentLine struct {
	Goal          string   `json:"goal"`
	Target        string   `json:"target"`
	SIP           string   `json:"sip"`
	InvestedTotal string   `json:"invested_total"`
	EstimatedGain string   `json:"estimated_gain"`
	EstimatedTax  string   `json:"estimated_tax"`
	Funds         []string `json:"funds"`
}
