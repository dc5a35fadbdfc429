package planner

import "WealthPlanner/internal/model"

// TargetFundsPerGoal is how many funds the planner tries to recommend per goal.
const TargetFundsPerGoal = 2

// UsageState tracks fund codes already recommended for earlier goals in one
// planning run. It must start empty for every run; reusing it across runs
// biases diversification against funds picked in an unrelated run.
type UsageState map[string]struct{}

// NewUsageState returns an empty usage set for a fresh planning run.
func NewUsageState() UsageState { return make(UsageState) }

// Used reports whether a fund code was already recommended in this run.
func (u UsageState) Used(code string) bool {
	_, ok := u[code]
	return ok
}

// Add marks a fund code as recommended.
func (u UsageState) Add(code string) { u[code] = struct{}{} }

// Diversify scans candidates in rank order and accepts each fund whose code is
// unused in the run and whose sponsor is unused within this goal, until target
// funds are picked or the list is exhausted. Accepted codes are added to used.
// A partial or empty result is valid and returned as-is.
func Diversify(candidates []model.FundRecord, used UsageState, target int) []model.FundRecord {
	picked := make([]model.FundRecord, 0, target)
	sponsors := make(map[string]struct{}, target)
	for _, c := range candidates {
		if len(picked) >= target {
			break
		}
		if used.Used(c.Code) {
			continue
		}
		sponsor := c.Sponsor()
		if _, dup := sponsors[sponsor]; dup {
			continue
		}
		picked = append(picked, c)
		sponsors[sponsor] = struct{}{}
		used.Add(c.Code)
	}
	return picked
}
