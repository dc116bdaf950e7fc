package channel

import "zucit/internal/model"

// Context is the taxed-scenario state a channel sees when the engine advances
// from one year to the next.
type Context struct {
	Year int

	// TaxedProfit is the current (pre-growth) taxed profit.
	TaxedProfit float64
	// ZucmanTax is this year's valuation tax.
	ZucmanTax float64
	// BaseGrowth is TaxedProfit * (1 + growth rate), before any channel adjustment.
	BaseGrowth float64
	// EstimatedRevenue is fixed for the run at initial profit / 0.10.
	EstimatedRevenue float64

	Params model.EconomicParameters
}

// Channel is one additive adjustment to next year's taxed profit.
type Channel interface {
	Name() string
	Contribution(ctx Context) float64
}

// Defaults returns the four channels in their canonical order.
func Defaults() []Channel {
	return []Channel{
		Investment{},
		PriceDemand{},
		Competitiveness{},
		Financing{},
	}
}

// Sum adds up the contributions of chans.
func Sum(chans []Channel, ctx Context) float64 {
	total := 0.0
	for _, c := range chans {
		total += c.Contribution(ctx)
	}
	return total
}
