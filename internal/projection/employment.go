package projection

import (
	"math"

	"zucit/internal/model"
)

const (
	// baselineEmploymentPassThrough is the share of profit growth turned into headcount.
	baselineEmploymentPassThrough = 0.7

	maxProductivityImpact = 0.5
	// maxYearlyEmploymentShift bounds the taxed change relative to initial headcount.
	maxYearlyEmploymentShift = 0.5

	minEmploymentShare    = 0.05
	maxEmploymentMultiple = 5
)

// baselineEmployment scales initial headcount with 70% of cumulative profit growth.
// initialProfit is positive after normalization.
func baselineEmployment(year, initialEmployees int, profit, initialProfit float64) int {
	if year == 0 {
		return initialEmployees
	}
	growthFactor := profit / initialProfit
	return truncInt(float64(initialEmployees) * (1 + baselineEmploymentPassThrough*(growthFactor-1)))
}

// truncInt truncates x toward zero, saturating at the int range.
func truncInt(x float64) int {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt64:
		return math.MaxInt
	case x <= math.MinInt64:
		return math.MinInt
	}
	return int(x)
}

// taxedEmployment combines the productivity and demand channels. Productivity
// enters with a negative sign: investment lost to the tax costs jobs, so a
// positive productivity impact lowers headcount. The change is applied to the
// initial headcount, not compounded, then truncated and bounded by
// EmploymentBounds.
func taxedEmployment(p model.EconomicParameters, initialEmployees int, profit, zucmanTax, price, referencePrice float64) int {
	e0 := float64(initialEmployees)

	productivityImpact := 0.0
	if profit > 0 {
		investmentReduction := zucmanTax * p.InvestmentRatioOfProfit
		productivityImpact = investmentReduction / profit * p.InvestmentElasticity
	}
	productivityImpact = clamp(productivityImpact, -maxProductivityImpact, maxProductivityImpact)
	fromProductivity := -productivityImpact * p.ProductivityEmploymentElasticity * e0

	priceIncrease := 0.0
	if referencePrice > 0 {
		priceIncrease = (price - referencePrice) / referencePrice
	}
	demandReduction := priceIncrease * p.DemandElasticity
	fromDemand := demandReduction * p.DemandEmploymentElasticity * e0

	shift := maxYearlyEmploymentShift * e0
	change := clamp(fromProductivity+fromDemand, -shift, shift)

	lo, hi := EmploymentBounds(initialEmployees)
	return clampInt(truncInt(e0+change), lo, hi)
}

// EmploymentBounds is the range taxed employment is kept in:
// [max(1, round(5% of initial)), 5x initial]. The upper bound saturates at
// math.MaxInt instead of wrapping.
func EmploymentBounds(initialEmployees int) (lo, hi int) {
	lo = max(1, int(math.Round(minEmploymentShare*float64(initialEmployees))))
	if initialEmployees > math.MaxInt/maxEmploymentMultiple {
		return lo, math.MaxInt
	}
	hi = maxEmploymentMultiple * initialEmployees
	return lo, hi
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
