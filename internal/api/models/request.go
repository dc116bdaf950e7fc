package models

import "zucit/internal/model"

// SimulateRequest is the body of POST /api/v1/simulate.
// GrowthRate is a percentage (8 = 8% per year), as typed in the web form.
type SimulateRequest struct {
	Valuation  *float64 `json:"valuation" binding:"required"`
	Profit     *float64 `json:"profit" binding:"required"`
	Employees  *int     `json:"employees" binding:"required"`
	GrowthRate *float64 `json:"growth_rate" binding:"required"`
	Years      *int     `json:"years,omitempty"`
}

// ToInput converts the request into an engine input (growth as a fraction).
func (r SimulateRequest) ToInput() model.SimulationInput {
	return model.SimulationInput{
		Valuation:  deref(r.Valuation),
		Profit:     deref(r.Profit),
		Employees:  deref(r.Employees),
		GrowthRate: deref(r.GrowthRate) / 100,
		Years:      r.Years,
	}
}

// CompanySimulateQuery holds the optional query of POST /api/v1/companies/:id/simulate.
type CompanySimulateQuery struct {
	Years *int `form:"years"`
}

// ExportQuery holds the query of POST /api/v1/simulate/export.
type ExportQuery struct {
	Format string `form:"format"` // "csv" (default) or "xlsx"
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
