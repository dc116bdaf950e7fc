package model

// CompanyProfile is one entry of the example catalog.
// GrowthRate is a fraction, like SimulationInput.GrowthRate.
type CompanyProfile struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Valuation  float64 `json:"valuation" yaml:"valuation"`
	Profit     float64 `json:"profit" yaml:"profit"`
	Employees  int     `json:"employees" yaml:"employees"`
	GrowthRate float64 `json:"growth_rate" yaml:"growth_rate"`
}

// Input converts the profile into a SimulationInput with the given horizon (nil = default).
func (c CompanyProfile) Input(years *int) SimulationInput {
	return SimulationInput{
		Valuation:  c.Valuation,
		Profit:     c.Profit,
		Employees:  c.Employees,
		GrowthRate: c.GrowthRate,
		Years:      years,
	}
}
