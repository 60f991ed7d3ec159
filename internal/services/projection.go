package services

import (
	"math"

	"investhub/internal/models"
)

// openEndedTenureMonths is the tenure assumed for open-ended instruments
// (mutual funds, ETFs) when projecting returns. It only affects the
// estimate; the product itself is never mutated.
const openEndedTenureMonths = 12

// fallbackGoal is used for the funding bar when a product declares neither
// a total goal nor any raised amount.
const fallbackGoal = 10_000_000

// ProjectInvestment computes the point estimate for buying unitCount units
// of a product. Unit counts below 1 are clamped to 1. A missing tenure is
// treated as one year and a missing yield as 0%, so the worst case returns
// the principal unchanged. Pure function; safe to call on every keystroke.
func ProjectInvestment(p *models.Product, unitCount int) InvestmentProjection {
	if unitCount < 1 {
		unitCount = 1
	}

	tenureMonths := p.TenureMonths
	if tenureMonths == 0 {
		tenureMonths = openEndedTenureMonths
	}
	tenureYears := float64(tenureMonths) / 12

	principal := float64(unitCount) * p.MinInvestment
	projected := principal + principal*p.ExpectedYield/100*tenureYears

	return InvestmentProjection{
		ProductID:       p.ID,
		UnitCount:       unitCount,
		UnitPrice:       p.MinInvestment,
		Principal:       principal,
		TenureYears:     tenureYears,
		ProjectedReturn: projected,
	}
}

// ComputeFundingProgress returns the funding bar percentage in [0, 100].
// When goal is absent it falls back to raised*2, then to a fixed constant,
// which also guards the division against a zero goal.
//
// TODO: the raised*2 fallback is an upstream heuristic with no stated
// rationale; confirm intended behavior with the product owner.
func ComputeFundingProgress(raised, goal float64) int {
	if raised < 0 {
		raised = 0
	}
	if goal <= 0 {
		goal = raised * 2
	}
	if goal <= 0 {
		goal = fallbackGoal
	}

	progress := int(math.Round(raised / goal * 100))
	if progress > 100 {
		return 100
	}
	return progress
}
