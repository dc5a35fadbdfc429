package backtest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"WealthPlanner/internal/model"
	"WealthPlanner/internal/nav"
)

var testNow = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

func newTestSimulator(f nav.Fetcher) *Simulator {
	s := NewSimulator(f, time.Hour)
	s.now = func() time.Time { return testNow }
	return s
}

// monthlyPoints returns one first-of-month observation per month, ending the
// month of testNow, all at the given nav.
func monthlyPoints(months int, navValue float64) []model.NavPoint {
	points := make([]model.NavPoint, 0, months)
	start := time.Date(testNow.Year(), testNow.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := months - 1; i >= 0; i-- {
		points = append(points, model.NavPoint{Date: start.AddDate(0, -i, 0), Nav: navValue})
	}
	return points
}

func TestRun_FlatSeries(t *testing.T) {
	sim := newTestSimulator(&nav.MockFetcher{Points: monthlyPoints(12, 100)})
	res, err := sim.Run(context.Background(), "F1", decimal.NewFromInt(5000), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Months != 12 {
		t.Errorf("months = %d, want 12", res.Months)
	}
	if !res.TotalInvested.Equal(decimal.NewFromInt(60000)) {
		t.Errorf("invested = %s, want 60000", res.TotalInvested)
	}
	if !res.CurrentValue.Equal(decimal.NewFromInt(60000)) {
		t.Errorf("value = %s, want 60000", res.CurrentValue)
	}
	if !res.AbsoluteGain.IsZero() {
		t.Errorf("gain = %s, want 0", res.AbsoluteGain)
	}
	if res.PercentReturn != 0 {
		t.Errorf("percent return = %v, want 0", res.PercentReturn)
	}
}

func TestRun_ValuesAtLatestRawObservation(t *testing.T) {
	points := monthlyPoints(12, 100)
	// A mid-month observation after the last resample point; valuation must
	// use it even though no purchase happens there.
	points = append(points, model.NavPoint{
		Date: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		Nav:  110,
	})
	sim := newTestSimulator(&nav.MockFetcher{Points: points})
	res, err := sim.Run(context.Background(), "F1", decimal.NewFromInt(5000), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Months != 12 {
		t.Errorf("months = %d, want 12 (mid-month point must not add a purchase)", res.Months)
	}
	// 600 units valued at 110.
	if !res.CurrentValue.Equal(decimal.NewFromInt(66000)) {
		t.Errorf("value = %s, want 66000", res.CurrentValue)
	}
	if !res.AbsoluteGain.Equal(decimal.NewFromInt(6000)) {
		t.Errorf("gain = %s, want 6000", res.AbsoluteGain)
	}
}

func TestRun_EmptyHistory(t *testing.T) {
	sim := newTestSimulator(&nav.MockFetcher{})
	_, err := sim.Run(context.Background(), "F1", decimal.NewFromInt(5000), 1)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestRun_AllObservationsOutOfWindow(t *testing.T) {
	old := []model.NavPoint{
		{Date: testNow.AddDate(-5, 0, 0), Nav: 50},
		{Date: testNow.AddDate(-4, 0, 0), Nav: 60},
	}
	sim := newTestSimulator(&nav.MockFetcher{Points: old})
	_, err := sim.Run(context.Background(), "F1", decimal.NewFromInt(5000), 1)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for out-of-window series, got %v", err)
	}
}

func TestRun_FetchError(t *testing.T) {
	sim := newTestSimulator(&nav.MockFetcher{Err: errors.New("boom")})
	_, err := sim.Run(context.Background(), "F1", decimal.NewFromInt(5000), 1)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable on fetch failure, got %v", err)
	}
}

func TestRun_InvalidInputs(t *testing.T) {
	sim := newTestSimulator(&nav.MockFetcher{Points: monthlyPoints(12, 100)})
	if _, err := sim.Run(context.Background(), "F1", decimal.Zero, 1); err == nil || errors.Is(err, ErrUnavailable) {
		t.Errorf("zero amount: want plain validation error, got %v", err)
	}
	if _, err := sim.Run(context.Background(), "F1", decimal.NewFromInt(5000), 0); err == nil || errors.Is(err, ErrUnavailable) {
		t.Errorf("zero years: want plain validation error, got %v", err)
	}
}

type countingFetcher struct {
	nav.MockFetcher
	calls int
}

func (c *countingFetcher) FetchHistory(ctx context.Context, code string) ([]model.NavPoint, error) {
	c.calls++
	return c.MockFetcher.FetchHistory(ctx, code)
}

func TestRun_MemoizesByQuery(t *testing.T) {
	f := &countingFetcher{MockFetcher: nav.MockFetcher{Points: monthlyPoints(12, 100)}}
	sim := newTestSimulator(f)
	amount := decimal.NewFromInt(5000)

	if _, err := sim.Run(context.Background(), "F1", amount, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := sim.Run(context.Background(), "F1", amount, 1); err != nil {
		t.Fatal(err)
	}
	if f.calls != 1 {
		t.Errorf("expected 1 fetch for repeated query, got %d", f.calls)
	}

	// A different window is a different query.
	if _, err := sim.Run(context.Background(), "F1", amount, 2); err != nil {
		t.Fatal(err)
	}
	if f.calls != 2 {
		t.Errorf("expected second fetch for new window, got %d", f.calls)
	}
}

func TestResampleMonthly_SkipsGaps(t *testing.T) {
	points := []model.NavPoint{
		{Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Nav: 100},
		{Date: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), Nav: 101},
		// February has no observation.
		{Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Nav: 102},
	}
	got := resampleMonthly(points)
	if len(got) != 2 {
		t.Fatalf("expected 2 monthly points, got %d", len(got))
	}
	if got[0].Nav != 100 || got[1].Nav != 102 {
		t.Errorf("expected first-of-month observations, got %+v", got)
	}
}
