package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"WealthPlanner/internal/backtest"
	"WealthPlanner/internal/model"
	"WealthPlanner/internal/nav"
	"WealthPlanner/internal/planner"
	"WealthPlanner/internal/recorder"
	"WealthPlanner/internal/strategy"
	"WealthPlanner/internal/universe"
)

func testApp(fetcher nav.Fetcher) *fiber.App {
	store := universe.NewStore([]model.FundRecord{
		{Code: "D1", Name: "HDFC Liquid Fund", Category: model.CategorySafeDebt, RiskGrade: model.RiskLow, StdDev: 0.4, FreqScore: 4, AvgReturn: 6, IsSafe: true},
		{Code: "E1", Name: "Axis Bluechip Fund", Category: model.CategoryEquity, RiskGrade: model.RiskModerate, StdDev: 12, FreqScore: 5, AvgReturn: 14, IsSafe: true},
		{Code: "E2", Name: "Mirae Large Cap Fund", Category: model.CategoryEquity, RiskGrade: model.RiskModerate, StdDev: 13, FreqScore: 4, AvgReturn: 13, IsSafe: true},
	})
	eng := planner.NewEngine(store, strategy.DefaultNamePolicy())
	sim := backtest.NewSimulator(fetcher, time.Hour)
	return New(eng, sim, store, recorder.NewNoopRecorder())
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

func TestPlanHandler_MalformedJSON(t *testing.T) {
	app := testApp(&nav.MockFetcher{})
	status, _ := postJSON(t, app, "/v1/plan", `{"goals": [`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestPlanHandler_InvalidGoals(t *testing.T) {
	app := testApp(&nav.MockFetcher{})
	tests := []struct {
		name string
		body string
	}{
		{"no goals", `{"goals": []}`},
		{"empty name", `{"goals": [{"name": " ", "target_amount": 100000, "horizon_years": 5}]}`},
		{"zero target", `{"goals": [{"name": "House", "target_amount": 0, "horizon_years": 5}]}`},
		{"horizon too low", `{"goals": [{"name": "House", "target_amount": 100000, "horizon_years": 0}]}`},
		{"horizon too high", `{"goals": [{"name": "House", "target_amount": 100000, "horizon_years": 31}]}`},
	}
	for _, tt := range tests {
		status, _ := postJSON(t, app, "/v1/plan", tt.body)
		if status != fiber.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tt.name, status)
		}
	}
}

func TestPlanHandler_Success(t *testing.T) {
	app := testApp(&nav.MockFetcher{})
	status, body := postJSON(t, app, "/v1/plan",
		`{"goals": [{"name": "Retirement", "target_amount": 5000000, "horizon_years": 10}]}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", status, body)
	}
	var result model.PlanResult
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(result.Recommendations))
	}
	if !result.TotalMonthly.IsPositive() {
		t.Errorf("total monthly = %s, want positive", result.TotalMonthly)
	}
	if len(result.Document.Lines) != 1 {
		t.Errorf("expected 1 document line, got %d", len(result.Document.Lines))
	}
}

func TestBacktestHandler_Unavailable(t *testing.T) {
	// Empty history surfaces as the soft unavailable outcome, not a 500.
	app := testApp(&nav.MockFetcher{})
	status, body := postJSON(t, app, "/v1/backtest", `{"code": "E1", "monthly_amount": 5000, "years": 1}`)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", status)
	}
	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["error"] != "unavailable" {
		t.Errorf("error = %q, want %q", payload["error"], "unavailable")
	}
}

func TestBacktestHandler_InvalidParams(t *testing.T) {
	app := testApp(&nav.MockFetcher{})
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"code":`},
		{"missing code", `{"monthly_amount": 5000, "years": 1}`},
		{"zero amount", `{"code": "E1", "monthly_amount": 0, "years": 1}`},
		{"zero years", `{"code": "E1", "monthly_amount": 5000, "years": 0}`},
	}
	for _, tt := range tests {
		status, _ := postJSON(t, app, "/v1/backtest", tt.body)
		if status != fiber.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tt.name, status)
		}
	}
}

func TestBacktestHandler_Success(t *testing.T) {
	now := time.Now()
	points := make([]model.NavPoint, 0, 12)
	for i := 11; i >= 0; i-- {
		points = append(points, model.NavPoint{Date: now.AddDate(0, -i, 0), Nav: 100})
	}
	app := testApp(&nav.MockFetcher{Points: points})

	status, body := postJSON(t, app, "/v1/backtest", `{"code": "E1", "monthly_amount": 5000, "years": 2}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", status, body)
	}
	var result model.BacktestResult
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.FundCode != "E1" {
		t.Errorf("fund code = %q, want E1", result.FundCode)
	}
	if result.Months == 0 || !result.TotalInvested.IsPositive() {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestHealthAndFunds(t *testing.T) {
	app := testApp(&nav.MockFetcher{})

	for _, path := range []string{"/health", "/v1/funds"} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, resp.StatusCode)
		}
	}
}
