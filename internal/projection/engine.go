// Package projection runs the two-scenario (baseline vs Zucman-taxed)
// year-by-year company projection.
package projection

import (
	"math"

	"zucit/internal/channel"
	"zucit/internal/model"
	"zucit/internal/risk"
)

const (
	basePriceIndex = 100.0
	inflationRate  = 0.02

	// baselineValuationGrowthShare is the share of profit growth reflected in
	// baseline valuation growth.
	baselineValuationGrowthShare = 0.8
	// taxedValuationGrowthShare scales the taxed valuation growth factor.
	taxedValuationGrowthShare = 0.6
	minProfitRatio            = 0.2

	// revenueMarginRatio converts initial profit into an estimated revenue (10% margin).
	revenueMarginRatio = 0.10
	// priceIndexScale converts a relative price increase into index points.
	priceIndexScale = 100.0
)

// Engine is safe for concurrent use: it only reads its parameters.
type Engine struct {
	params     model.EconomicParameters
	channels   []channel.Channel
	classifier risk.Classifier
}

type Option func(*Engine)

// WithChannels replaces the default taxed-profit channels.
func WithChannels(chans ...channel.Channel) Option {
	return func(e *Engine) { e.channels = chans }
}

func New(params model.EconomicParameters, opts ...Option) *Engine {
	e := &Engine{
		params:     params,
		channels:   channel.Defaults(),
		classifier: risk.New(params.BaseYear),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Params() model.EconomicParameters { return e.params }

type scenarioState struct {
	profit    float64
	valuation float64
	price     float64
}

// Run normalizes the input and simulates years 0..horizon for both scenarios.
// It never fails: degenerate divisions fall back to fixed defaults so every
// finite input yields a complete, finite series.
func (e *Engine) Run(in model.SimulationInput) *model.SimulationResult {
	p := e.params
	in = in.Normalize()
	years := in.HorizonOr(p.DefaultHorizon)
	if years < 0 {
		years = 0
	}
	in.Years = &years

	n := years + 1
	res := &model.SimulationResult{
		Input:      in,
		Years:      make([]int, 0, n),
		NoZucman:   model.NewScenarioTrajectory(n),
		WithZucman: model.NewScenarioTrajectory(n),
	}

	g := in.GrowthRate
	initialProfit := in.Profit
	estimatedRevenue := initialProfit / revenueMarginRatio

	base := scenarioState{profit: in.Profit, valuation: in.Valuation, price: basePriceIndex}
	taxed := base

	for year := 0; year <= years; year++ {
		res.Years = append(res.Years, p.BaseYear+year)

		record(&res.NoZucman, base,
			baselineEmployment(year, in.Employees, base.profit, initialProfit),
			base.profit*p.NormalProfitTax)

		zucmanTax := taxed.valuation * p.ZucmanTaxRate
		record(&res.WithZucman, taxed,
			taxedEmployment(p, in.Employees, taxed.profit, zucmanTax, taxed.price, base.price),
			taxed.profit*p.NormalProfitTax+zucmanTax)

		if year == years {
			break
		}

		base.profit *= 1 + g
		base.valuation *= 1 + g*baselineValuationGrowthShare
		base.price *= 1 + inflationRate

		baseGrowth := taxed.profit * (1 + g)
		nextProfit := math.Max(0, baseGrowth+channel.Sum(e.channels, channel.Context{
			Year:             year,
			TaxedProfit:      taxed.profit,
			ZucmanTax:        zucmanTax,
			BaseGrowth:       baseGrowth,
			EstimatedRevenue: estimatedRevenue,
			Params:           p,
		}))

		taxed.price = base.price + zucmanTax/estimatedRevenue*p.PricePassThrough*priceIndexScale

		profitRatio := 1.0
		if baseGrowth != 0 {
			profitRatio = nextProfit / baseGrowth
		}
		taxed.valuation *= 1 + g*math.Max(minProfitRatio, profitRatio)*taxedValuationGrowthShare
		taxed.profit = nextProfit
	}

	res.KPIs = e.aggregate(in, years, res)
	return res
}

func record(t *model.ScenarioTrajectory, s scenarioState, employees int, revenue float64) {
	t.Profits = append(t.Profits, saturate(s.profit))
	t.Valuations = append(t.Valuations, saturate(s.valuation))
	t.Prices = append(t.Prices, saturate(s.price))
	t.Employees = append(t.Employees, employees)
	t.StateRevenue = append(t.StateRevenue, saturate(revenue))
}

// saturate keeps recorded values finite when extreme growth over long horizons
// leaves the float64 range: ±Inf becomes ±MaxFloat64 and NaN becomes 0.
func saturate(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case math.IsInf(x, 1):
		return math.MaxFloat64
	case math.IsInf(x, -1):
		return -math.MaxFloat64
	}
	return x
}
