package model

// ScenarioTrajectory holds one scenario's yearly series.
// All slices are index-aligned with SimulationResult.Years.
type ScenarioTrajectory struct {
	Profits      []float64 `json:"profits"`
	Valuations   []float64 `json:"valuations"`
	Prices       []float64 `json:"prices"`
	Employees    []int     `json:"employees"`
	StateRevenue []float64 `json:"state_revenue"`
}

// NewScenarioTrajectory preallocates room for n years.
func NewScenarioTrajectory(n int) ScenarioTrajectory {
	return ScenarioTrajectory{
		Profits:      make([]float64, 0, n),
		Valuations:   make([]float64, 0, n),
		Prices:       make([]float64, 0, n),
		Employees:    make([]int, 0, n),
		StateRevenue: make([]float64, 0, n),
	}
}

// Len is the number of simulated years (horizon + 1).
func (t ScenarioTrajectory) Len() int { return len(t.Profits) }

// KPIs are final-year differentials between the two scenarios.
type KPIs struct {
	ProfitLossPercent       float64 `json:"profit_loss_percent"`
	ProfitLossAmount        float64 `json:"profit_loss_amount"`
	JobsLost                int     `json:"jobs_lost"`
	JobsLostPercent         float64 `json:"jobs_lost_percent"`
	AdditionalTaxRevenue    float64 `json:"additional_tax_revenue"`
	TotalZucmanTaxCollected float64 `json:"total_zucman_tax_collected"`
	TaxEfficiency           float64 `json:"tax_efficiency"`
	PriceIncreasePercent    float64 `json:"price_increase_percent"`
	PriceIncreaseAbsolute   float64 `json:"price_increase_absolute"`

	RiskAssessment
}

// SimulationResult is everything one engine run produces.
type SimulationResult struct {
	Input      SimulationInput    `json:"input"`
	Years      []int              `json:"years"`
	NoZucman   ScenarioTrajectory `json:"no_zucman"`
	WithZucman ScenarioTrajectory `json:"with_zucman"`
	KPIs       KPIs               `json:"kpis"`
}
