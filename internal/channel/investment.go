package channel

import "math"

// Channel weights in the taxed profit recurrence.
const (
	investmentWeight      = 0.4
	priceDemandWeight     = 0.3
	competitivenessWeight = 0.25
	financingWeight       = 0.05

	// minInvestmentRatio is also used when profit is not positive.
	minInvestmentRatio = 0.1
)

// Investment models capital diverted from investment to pay the tax.
type Investment struct{}

func (Investment) Name() string { return "investment" }

func (Investment) Contribution(ctx Context) float64 {
	ratio := InvestmentRatio(ctx.TaxedProfit, ctx.ZucmanTax, ctx.Params.InvestmentRatioOfProfit)
	impact := RealPow(ratio, ctx.Params.InvestmentElasticity)
	return ctx.BaseGrowth * (impact - 1) * investmentWeight
}

// InvestmentRatio is the share of profit left for investment after the tax,
// floored at 0.1.
func InvestmentRatio(profit, zucmanTax, ratioOfProfit float64) float64 {
	if profit <= 0 {
		return minInvestmentRatio
	}
	return math.Max(minInvestmentRatio, (profit-zucmanTax*ratioOfProfit)/profit)
}

// RealPow computes base^exp on the real line. A negative base is clamped to 0
// first, so the result is never NaN for a finite exponent.
func RealPow(base, exp float64) float64 {
	if base < 0 {
		base = 0
	}
	return math.Pow(base, exp)
}
