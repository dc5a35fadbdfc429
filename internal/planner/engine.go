package planner

import (
	"github.com/shopspring/decimal"

	"WealthPlanner/internal/model"
	"WealthPlanner/internal/strategy"
	"WealthPlanner/internal/universe"
)

// Engine runs the per-goal planning pipeline against a loaded universe.
type Engine struct {
	store  *universe.Store
	policy strategy.NamePolicy
}

// NewEngine creates a planning engine over the given universe and name policy.
func NewEngine(store *universe.Store, policy strategy.NamePolicy) *Engine {
	return &Engine{store: store, policy: policy}
}

// Plan solves every goal in order and returns the recommendations, the total
// monthly contribution, and the exportable plan document. Fund usage is
// threaded through a fresh UsageState so no fund repeats across goals within
// the run, and nothing leaks into later runs.
func (e *Engine) Plan(goals []model.Goal) *model.PlanResult {
	used := NewUsageState()
	result := &model.PlanResult{
		Recommendations: make([]model.RecommendationSet, 0, len(goals)),
		TotalMonthly:    decimal.Zero,
	}

	for _, goal := range goals {
		risk := strategy.ForHorizon(goal.HorizonYears)
		candidates := strategy.Candidates(e.store, risk, e.policy)
		funds := Diversify(candidates, used, TargetFundsPerGoal)

		contribution := SolveContribution(goal.TargetAmount, goal.HorizonYears, risk.AnnualReturn())
		tax := EstimateTax(goal.TargetAmount, contribution, goal.HorizonYears)

		result.Recommendations = append(result.Recommendations, model.RecommendationSet{
			GoalName:             goal.Name,
			TargetAmount:         goal.TargetAmount,
			HorizonYears:         goal.HorizonYears,
			StrategyLabel:        risk.Label(),
			AssumedAnnualReturn:  risk.AnnualReturn(),
			RequiredContribution: contribution,
			EstimatedTax:         tax,
			SelectedFunds:        funds,
		})
		result.TotalMonthly = result.TotalMonthly.Add(contribution)
	}

	result.Document = BuildDocument(result.Recommendations, result.TotalMonthly)
	return result
}
