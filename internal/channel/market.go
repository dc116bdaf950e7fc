package channel

// PriceDemand models lost volume when part of the tax is passed on to prices.
type PriceDemand struct{}

func (PriceDemand) Name() string { return "price_demand" }

func (PriceDemand) Contribution(ctx Context) float64 {
	relativePriceIncrease := safeDiv(ctx.ZucmanTax*ctx.Params.PricePassThrough, ctx.EstimatedRevenue)
	return ctx.BaseGrowth * relativePriceIncrease * ctx.Params.DemandElasticity * priceDemandWeight
}

// Competitiveness models market share lost to untaxed competitors.
type Competitiveness struct{}

func (Competitiveness) Name() string { return "competitiveness" }

func (Competitiveness) Contribution(ctx Context) float64 {
	costIncrease := safeDiv(ctx.ZucmanTax, ctx.EstimatedRevenue)
	return ctx.BaseGrowth * costIncrease * ctx.Params.MarketShareElasticity * competitivenessWeight
}

// Financing models the higher cost of capital once cash flow goes to the tax.
type Financing struct{}

func (Financing) Name() string { return "financing" }

func (Financing) Contribution(ctx Context) float64 {
	cashFlowImpact := 0.0
	if ctx.TaxedProfit > 0 {
		cashFlowImpact = ctx.ZucmanTax / ctx.TaxedProfit
	}
	return ctx.BaseGrowth * (-cashFlowImpact * ctx.Params.FinancingCostImpact) * financingWeight
}

// safeDiv returns 0 when den is not positive.
func safeDiv(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
