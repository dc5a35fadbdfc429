package planner

import (
	"fmt"

	"github.com/shopspring/decimal"

	"WealthPlanner/internal/model"
)

// FormatINR renders an amount the way Indian investors read it: crores above
// one crore, lakhs above one lakh, whole rupees below.
func FormatINR(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	switch {
	case f >= 1e7:
		return fmt.Sprintf("₹%.2f Cr", f/1e7)
	case f >= 1e5:
		return fmt.Sprintf("₹%.2f L", f/1e5)
	default:
		return fmt.Sprintf("₹%.0f", f)
	}
}

// BuildDocument flattens recommendations into the per-goal summary handed to
// the PDF renderer: goal, target, SIP, invested total, estimated gain and tax,
// and fund names, plus the grand monthly total.
func BuildDocument(recs []model.RecommendationSet, totalMonthly decimal.Decimal) model.PlanDocument {
	doc := model.PlanDocument{
		Lines:      make([]model.DocumentLine, 0, len(recs)),
		GrandTotal: FormatINR(totalMonthly) + "/mo",
	}
	for _, rec := range recs {
		n := decimal.NewFromInt(int64(rec.HorizonYears * 12))
		invested := rec.RequiredContribution.Mul(n)
		gain := rec.TargetAmount.Sub(invested)

		names := make([]string, 0, len(rec.SelectedFunds))
		for _, f := range rec.SelectedFunds {
			names = append(names, f.Name)
		}

		doc.Lines = append(doc.Lines, model.DocumentLine{
			Goal:          rec.GoalName,
			Target:        FormatINR(rec.TargetAmount),
			SIP:           FormatINR(rec.RequiredContribution) + "/mo",
			InvestedTotal: FormatINR(invested),
			EstimatedGain: FormatINR(gain),
			EstimatedTax:  FormatINR(rec.EstimatedTax),
			Funds:         names,
		})
	}
	return doc
}
