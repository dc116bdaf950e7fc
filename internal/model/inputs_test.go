package model

import (
	"math"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   SimulationInput
		want SimulationInput
	}{
		{
			name: "all zero",
			in:   SimulationInput{GrowthRate: 0.1},
			want: SimulationInput{Valuation: 1e7, Profit: 1e6, Employees: 1000, GrowthRate: 0.1},
		},
		{
			name: "profit floor follows valuation",
			in:   SimulationInput{Valuation: 5e12, Profit: -3, Employees: 10},
			want: SimulationInput{Valuation: 5e12, Profit: MinProfitShare * 5e12, Employees: 10},
		},
		{
			name: "valuation from profit",
			in:   SimulationInput{Valuation: -1, Profit: 2e6, Employees: -4},
			want: SimulationInput{Valuation: 2e7, Profit: 2e6, Employees: 1000},
		},
		{
			name: "untouched",
			in:   SimulationInput{Valuation: 5e7, Profit: 2e6, Employees: 50, GrowthRate: 0.25},
			want: SimulationInput{Valuation: 5e7, Profit: 2e6, Employees: 50, GrowthRate: 0.25},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if got.Valuation != tc.want.Valuation || got.Profit != tc.want.Profit ||
				got.Employees != tc.want.Employees || got.GrowthRate != tc.want.GrowthRate {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestHorizonOr(t *testing.T) {
	if got := (SimulationInput{}).HorizonOr(20); got != 20 {
		t.Fatalf("default horizon: got %d", got)
	}
	if got := (SimulationInput{Years: intPtr(0)}).HorizonOr(20); got != 0 {
		t.Fatalf("explicit zero horizon: got %d", got)
	}
}

func TestValidate(t *testing.T) {
	ok := []SimulationInput{
		{},
		{Valuation: -1, Profit: -1, Employees: -1},
		{GrowthRate: MinGrowthRate, Years: intPtr(0)},
		{GrowthRate: MaxGrowthRate, Years: intPtr(MaxYears)},
		{Employees: MaxEmployees},
	}
	for i, in := range ok {
		if err := in.Validate(); err != nil {
			t.Fatalf("case %d: unexpected error %v", i, err)
		}
	}

	bad := []SimulationInput{
		{Valuation: math.NaN()},
		{Profit: math.Inf(1)},
		{GrowthRate: math.Inf(-1)},
		{GrowthRate: -1.5},
		{GrowthRate: 11},
		{Years: intPtr(-1)},
		{Years: intPtr(MaxYears + 1)},
		{Employees: MaxEmployees + 1},
	}
	for i, in := range bad {
		if err := in.Validate(); err == nil {
			t.Fatalf("case %d: expected an error for %+v", i, in)
		}
	}
}

func TestEconomicParametersValidate(t *testing.T) {
	if err := DefaultEconomicParameters().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	mutations := map[string]func(*EconomicParameters){
		"negative zucman":  func(p *EconomicParameters) { p.ZucmanTaxRate = -0.1 },
		"profit tax > 1":   func(p *EconomicParameters) { p.NormalProfitTax = 1.5 },
		"nan elasticity":   func(p *EconomicParameters) { p.DemandElasticity = math.NaN() },
		"negative horizon": func(p *EconomicParameters) { p.DefaultHorizon = -1 },
		"zero base year":   func(p *EconomicParameters) { p.BaseYear = 0 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			p := DefaultEconomicParameters()
			mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestCompanyProfileInput(t *testing.T) {
	c := CompanyProfile{ID: "startup", Valuation: 5e7, Profit: 2e6, Employees: 50, GrowthRate: 0.25}
	in := c.Input(intPtr(5))
	if in.Valuation != 5e7 || in.Profit != 2e6 || in.Employees != 50 || in.GrowthRate != 0.25 {
		t.Fatalf("unexpected input %+v", in)
	}
	if in.Years == nil || *in.Years != 5 {
		t.Fatalf("horizon not carried over")
	}
}
