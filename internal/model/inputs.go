package model

import (
	"fmt"
	"math"
)

// Horizon and growth limits enforced at the request boundary.
const (
	MaxYears      = 500
	MaxEmployees  = 1_000_000_000
	MinGrowthRate = -1.0
	MaxGrowthRate = 10.0
)

// Floors applied by Normalize.
const (
	MinProfit          = 1_000_000.0
	MinProfitShare     = 0.001 // of valuation
	ValuationToProfit  = 10.0
	DefaultEmployeeCnt = 1000
)

// SimulationInput is the company profile fed to the projection engine.
// GrowthRate is a fraction (0.08 = 8% per year).
type SimulationInput struct {
	Valuation  float64 `json:"valuation"`
	Profit     float64 `json:"profit"`
	Employees  int     `json:"employees"`
	GrowthRate float64 `json:"growth_rate"`
	// Years is optional; nil means the engine's default horizon.
	Years *int `json:"years,omitempty"`
}

// Normalize replaces non-positive figures with floor values so the engine
// always starts from a positive profit, valuation and headcount.
func (in SimulationInput) Normalize() SimulationInput {
	out := in
	if out.Profit <= 0 {
		out.Profit = math.Max(MinProfit, MinProfitShare*out.Valuation)
	}
	if out.Valuation <= 0 {
		out.Valuation = ValuationToProfit * out.Profit
	}
	if out.Employees <= 0 {
		out.Employees = DefaultEmployeeCnt
	}
	return out
}

// HorizonOr returns Years, or def when Years is unset.
func (in SimulationInput) HorizonOr(def int) int {
	if in.Years == nil {
		return def
	}
	return *in.Years
}

// Validate rejects inputs the engine should never see: non-finite numbers,
// horizons outside [0, MaxYears], growth rates outside [MinGrowthRate, MaxGrowthRate]
// and headcounts above MaxEmployees.
// Non-positive amounts are fine here; Normalize takes care of them.
func (in SimulationInput) Validate() error {
	for name, v := range map[string]float64{
		"valuation":   in.Valuation,
		"profit":      in.Profit,
		"growth_rate": in.GrowthRate,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a finite number", name)
		}
	}
	if in.GrowthRate < MinGrowthRate || in.GrowthRate > MaxGrowthRate {
		return fmt.Errorf("growth_rate must be within [%g, %g]", MinGrowthRate, MaxGrowthRate)
	}
	if in.Employees > MaxEmployees {
		return fmt.Errorf("employees must be at most %d", MaxEmployees)
	}
	if in.Years != nil && (*in.Years < 0 || *in.Years > MaxYears) {
		return fmt.Errorf("years must be within [0, %d]", MaxYears)
	}
	return nil
}
