package server

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"WealthPlanner/internal/backtest"
	"WealthPlanner/internal/model"
	"WealthPlanner/internal/planner"
	"WealthPlanner/internal/recorder"
	"WealthPlanner/internal/universe"
)

type handlers struct {
	eng   *planner.Engine
	sim   *backtest.Simulator
	store *universe.Store
	rec   recorder.Recorder
}

func (h *handlers) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "funds": h.store.Len()})
}

func (h *handlers) listFunds(c *fiber.Ctx) error {
	funds := h.store.All()
	return c.JSON(fiber.Map{"count": len(funds), "funds": funds})
}

type planRequest struct {
	Goals []model.Goal `json:"goals"`
}

func (h *handlers) plan(c *fiber.Ctx) error {
	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Goals) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "at least one goal is required")
	}
	for i, g := range req.Goals {
		if strings.TrimSpace(g.Name) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "goal name is required")
		}
		if !g.TargetAmount.IsPositive() {
			return fiber.NewError(fiber.StatusBadRequest, "target_amount must be positive")
		}
		if g.HorizonYears < 1 || g.HorizonYears > 30 {
			return fiber.NewError(fiber.StatusBadRequest, "horizon_years must be between 1 and 30")
		}
		req.Goals[i].Name = strings.TrimSpace(g.Name)
	}

	result := h.eng.Plan(req.Goals)
	h.recordPlan(result)
	return c.JSON(result)
}

func (h *handlers) recordPlan(result *model.PlanResult) {
	run := &recorder.PlanRun{
		GoalCount:    len(result.Recommendations),
		TotalMonthly: result.TotalMonthly.String(),
	}
	for _, rec := range result.Recommendations {
		codes := make([]string, 0, len(rec.SelectedFunds))
		for _, f := range rec.SelectedFunds {
			codes = append(codes, f.Code)
		}
		run.Goals = append(run.Goals, recorder.PlanGoal{
			Name:         rec.GoalName,
			Target:       rec.TargetAmount.String(),
			HorizonYears: rec.HorizonYears,
			Strategy:     rec.StrategyLabel,
			Contribution: rec.RequiredContribution.String(),
			Tax:          rec.EstimatedTax.String(),
			FundCodes:    strings.Join(codes, ","),
		})
	}
	if err := h.rec.RecordPlan(run); err != nil {
		log.Printf("[ERROR] record plan: %v", err)
	}
}

type backtestRequest struct {
	Code          string          `json:"code"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	Years         int             `json:"years"`
}

func (h *handlers) backtest(c *fiber.Ctx) error {
	var req backtestRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Code) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "fund code is required")
	}
	if !req.MonthlyAmount.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "monthly_amount must be positive")
	}
	if req.Years < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "years must be positive")
	}

	result, err := h.sim.Run(c.Context(), req.Code, req.MonthlyAmount, req.Years)
	if err != nil {
		if errors.Is(err, backtest.ErrUnavailable) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "unavailable",
				"message": "no usable history for this fund, try a different one",
			})
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.rec.RecordBacktest(&recorder.BacktestRun{
		FundCode:      result.FundCode,
		Monthly:       req.MonthlyAmount.String(),
		Years:         req.Years,
		Invested:      result.TotalInvested.String(),
		Value:         result.CurrentValue.String(),
		PercentReturn: result.PercentReturn,
	}); err != nil {
		log.Printf("[ERROR] record backtest: %v", err)
	}
	return c.JSON(result)
}
