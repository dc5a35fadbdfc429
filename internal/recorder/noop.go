package recorder

// NoopRecorder is a no-op implementation used when SQLite is not available.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordPlan(_ *PlanRun) error         { return nil }
func (n *NoopRecorder) RecordBacktest(_ *BacktestRun) error { return nil }
func (n *NoopRecorder) Close() error                        { return nil }
