package model

import (
	"errors"
	"math"
)

// EconomicParameters holds the tax rates and elasticities that drive a projection.
// A value is built once at startup and passed by value to the engine; nothing
// mutates it afterwards.
//
// Units:
// - tax rates: fraction per year (0.25 = 25%)
// - elasticities: dimensionless, negative values mean an inverse response
type EconomicParameters struct {
	ZucmanTaxRate   float64
	NormalProfitTax float64

	// DefaultHorizon is used when a SimulationInput carries no Years.
	DefaultHorizon int
	// BaseYear is the calendar year of simulation year 0.
	BaseYear int

	InvestmentElasticity    float64
	InvestmentRatioOfProfit float64
	PricePassThrough        float64
	DemandElasticity        float64
	MarketShareElasticity   float64
	FinancingCostImpact     float64

	ProductivityEmploymentElasticity float64
	DemandEmploymentElasticity       float64
}

// DefaultEconomicParameters returns the reference calibration.
func DefaultEconomicParameters() EconomicParameters {
	return EconomicParameters{
		ZucmanTaxRate:   0.02857, // 2% + flat tax
		NormalProfitTax: 0.25,
		DefaultHorizon:  20,
		BaseYear:        2024,

		InvestmentElasticity:    0.4,
		InvestmentRatioOfProfit: 0.3,
		PricePassThrough:        0.7,
		DemandElasticity:        -1.2,
		MarketShareElasticity:   -0.8,
		FinancingCostImpact:     0.15,

		ProductivityEmploymentElasticity: 0.3,
		DemandEmploymentElasticity:       0.8,
	}
}

func (p EconomicParameters) Validate() error {
	fields := []float64{
		p.ZucmanTaxRate, p.NormalProfitTax,
		p.InvestmentElasticity, p.InvestmentRatioOfProfit, p.PricePassThrough,
		p.DemandElasticity, p.MarketShareElasticity, p.FinancingCostImpact,
		p.ProductivityEmploymentElasticity, p.DemandEmploymentElasticity,
	}
	for _, f := range fields {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errors.New("economic parameters must be finite numbers")
		}
	}
	if p.ZucmanTaxRate < 0 || p.ZucmanTaxRate > 1 {
		return errors.New("ZucmanTaxRate must be in [0, 1]")
	}
	if p.NormalProfitTax < 0 || p.NormalProfitTax > 1 {
		return errors.New("NormalProfitTax must be in [0, 1]")
	}
	if p.DefaultHorizon < 0 || p.DefaultHorizon > MaxYears {
		return errors.New("DefaultHorizon must be in [0, MaxYears]")
	}
	if p.BaseYear <= 0 {
		return errors.New("BaseYear must be > 0")
	}
	return nil
}
