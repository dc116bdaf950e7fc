package projection

import (
	"zucit/internal/model"
	"zucit/internal/risk"
)

// collectedValuationGrowthShare drives the simplified valuation path used for
// TotalZucmanTaxCollected.
const collectedValuationGrowthShare = 0.6

func (e *Engine) aggregate(in model.SimulationInput, years int, res *model.SimulationResult) model.KPIs {
	p := e.params
	base, taxed := res.NoZucman, res.WithZucman
	last := base.Len() - 1

	profitLoss := base.Profits[last] - taxed.Profits[last]
	jobsLost := base.Employees[last] - taxed.Employees[last]
	priceIncrease := taxed.Prices[last] - base.Prices[last]

	additional := 0.0
	for i := range taxed.StateRevenue {
		additional += taxed.StateRevenue[i] - base.StateRevenue[i]
	}
	collected := TotalZucmanTaxCollected(in.Valuation, in.GrowthRate, p.ZucmanTaxRate, years)

	efficiency := 0.0
	if collected > 0 {
		efficiency = additional / collected
	}

	finalValuation := taxed.Valuations[last]
	assessment := e.classifier.Assess(risk.Snapshot{
		InitialValuation: in.Valuation,
		InitialProfit:    in.Profit,
		InitialEmployees: in.Employees,
		FinalProfit:      taxed.Profits[last],
		FinalValuation:   finalValuation,
		FinalZucmanTax:   finalValuation * p.ZucmanTaxRate,
		Years:            years,
	})

	return model.KPIs{
		ProfitLossPercent:       saturate(percentOf(profitLoss, base.Profits[last])),
		ProfitLossAmount:        saturate(profitLoss),
		JobsLost:                jobsLost,
		JobsLostPercent:         saturate(percentOf(float64(jobsLost), float64(base.Employees[last]))),
		AdditionalTaxRevenue:    saturate(additional),
		TotalZucmanTaxCollected: saturate(collected),
		TaxEfficiency:           saturate(efficiency),
		PriceIncreasePercent:    saturate(percentOf(priceIncrease, base.Prices[last])),
		PriceIncreaseAbsolute:   saturate(priceIncrease),
		RiskAssessment:          assessment,
	}
}

// TotalZucmanTaxCollected sums the tax over `years` steps of a valuation that
// compounds at growthRate*0.6, starting from the initial valuation. It is a
// simplified path, separate from the taxed trajectory.
func TotalZucmanTaxCollected(valuation, growthRate, rate float64, years int) float64 {
	total := 0.0
	for i := 0; i < years; i++ {
		total += valuation * rate
		valuation *= 1 + growthRate*collectedValuationGrowthShare
	}
	return total
}

// percentOf returns part/whole in percent, or 0 when whole is not positive.
func percentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}
