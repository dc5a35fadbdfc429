package backtest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"WealthPlanner/internal/cache"
	"WealthPlanner/internal/model"
	"WealthPlanner/internal/nav"
)

// ErrUnavailable signals that no usable history exists for the requested
// backtest. It is a soft failure: the caller suggests trying another fund.
var ErrUnavailable = errors.New("nav history unavailable")

// Simulator replays a hypothetical monthly SIP against a fund's NAV history.
type Simulator struct {
	fetcher nav.Fetcher
	results *cache.Cache[string, model.BacktestResult]
	now     func() time.Time
}

// NewSimulator creates a simulator that memoizes results for ttl per
// (fund, amount, years) query.
func NewSimulator(fetcher nav.Fetcher, ttl time.Duration) *Simulator {
	return &Simulator{
		fetcher: fetcher,
		results: cache.New[string, model.BacktestResult](ttl),
		now:     time.Now,
	}
}

// SweepCache drops expired memoized results and reports how many were removed.
func (s *Simulator) SweepCache() int { return s.results.Sweep() }

// Run simulates buying contribution/price units once per calendar month over
// the lookback window and values the holding at the latest in-window NAV.
// Fetch failures, an empty window, and zero invested all surface as
// ErrUnavailable.
func (s *Simulator) Run(ctx context.Context, code string, monthly decimal.Decimal, years int) (model.BacktestResult, error) {
	if !monthly.IsPositive() {
		return model.BacktestResult{}, fmt.Errorf("monthly amount must be positive")
	}
	if years <= 0 {
		return model.BacktestResult{}, fmt.Errorf("lookback years must be positive")
	}

	key := fmt.Sprintf("%s|%s|%d", code, monthly.String(), years)
	if res, ok := s.results.Get(key); ok {
		return res, nil
	}

	points, err := s.fetcher.FetchHistory(ctx, code)
	if err != nil {
		log.Printf("[WARN] backtest fetch %s: %v", code, err)
		return model.BacktestResult{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	now := s.now()
	from := now.AddDate(0, 0, -years*365)
	window := windowPoints(points, from, now)
	if len(window) == 0 {
		return model.BacktestResult{}, fmt.Errorf("%w: no observations in window", ErrUnavailable)
	}

	amount, _ := monthly.Float64()
	var units, invested float64
	monthlyPoints := resampleMonthly(window)
	for _, p := range monthlyPoints {
		units += amount / p.Nav
		invested += amount
	}
	if invested == 0 {
		return model.BacktestResult{}, fmt.Errorf("%w: nothing invested", ErrUnavailable)
	}

	// Value at the most recent raw observation, not the last resample point.
	latest := window[len(window)-1].Nav
	value := units * latest

	res := model.BacktestResult{
		FundCode:      code,
		Months:        len(monthlyPoints),
		TotalInvested: decimal.NewFromFloat(invested).Round(2),
		CurrentValue:  decimal.NewFromFloat(value).Round(2),
		AbsoluteGain:  decimal.NewFromFloat(value - invested).Round(2),
		PercentReturn: (value/invested - 1) * 100,
	}
	s.results.Set(key, res)
	return res, nil
}

// windowPoints keeps observations in [from, to], sorted ascending by date.
func windowPoints(points []model.NavPoint, from, to time.Time) []model.NavPoint {
	var out []model.NavPoint
	for _, p := range points {
		if p.Date.Before(from) || p.Date.After(to) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// resampleMonthly keeps the first observation of each calendar month. Months
// with no observation are skipped, never interpolated.
func resampleMonthly(points []model.NavPoint) []model.NavPoint {
	var out []model.NavPoint
	seen := make(map[int]struct{})
	for _, p := range points {
		key := p.Date.Year()*100 + int(p.Date.Month())
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
