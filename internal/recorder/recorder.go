package recorder

// PlanRun captures one planning pass for history. Money values are stored as
// exact decimal strings.
type PlanRun struct {
	GoalCount    int
	TotalMonthly string
	Goals        []PlanGoal
}

// PlanGoal is one goal's outcome within a plan run.
type PlanGoal struct {
	Name         string
	Target       string
	HorizonYears int
	Strategy     string
	Contribution string
	Tax          string
	FundCodes    string // comma-separated
}

// BacktestRun captures one backtest query and its result.
type BacktestRun struct {
	FundCode      string
	Monthly       string
	Years         int
	Invested      string
	Value         string
	PercentReturn float64
}

// Recorder persists run history for later analysis.
type Recorder interface {
	RecordPlan(run *PlanRun) error
	RecordBacktest(run *BacktestRun) error
	Close() error
}
