package channel

import (
	"math"
	"testing"

	"zucit/internal/model"
)

func ctxFor(profit, tax float64) Context {
	return Context{
		TaxedProfit:      profit,
		ZucmanTax:        tax,
		BaseGrowth:       profit * 1.1,
		EstimatedRevenue: profit / 0.10,
		Params:           model.DefaultEconomicParameters(),
	}
}

func TestRealPow(t *testing.T) {
	if got := RealPow(-8, 1.0/3); got != 0 {
		t.Fatalf("negative base: got %v want 0", got)
	}
	if got := RealPow(0.1, 0.4); math.Abs(got-0.398107170553497) > 1e-12 {
		t.Fatalf("0.1^0.4: got %v", got)
	}
	if got := RealPow(4, 0.5); got != 2 {
		t.Fatalf("4^0.5: got %v", got)
	}
}

func TestInvestmentRatio(t *testing.T) {
	cases := []struct {
		name               string
		profit, tax, ratio float64
		want               float64
	}{
		{"non-positive profit", 0, 10, 0.3, 0.1},
		{"negative profit", -5, 10, 0.3, 0.1},
		{"floored", 100, 1000, 0.3, 0.1},
		{"regular", 100, 10, 0.3, 0.97},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InvestmentRatio(tc.profit, tc.tax, tc.ratio); math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestChannelsReduceGrowthUnderTax(t *testing.T) {
	ctx := ctxFor(1e11, 8.571e10)
	for _, c := range Defaults() {
		if got := c.Contribution(ctx); got >= 0 {
			t.Fatalf("%s: expected a negative contribution, got %v", c.Name(), got)
		}
	}
}

func TestChannelsAreNeutralWithoutTax(t *testing.T) {
	ctx := ctxFor(1e11, 0)
	for _, c := range Defaults() {
		if got := c.Contribution(ctx); got != 0 {
			t.Fatalf("%s: expected 0 without tax, got %v", c.Name(), got)
		}
	}
}

func TestChannelsGuardDegenerateDenominators(t *testing.T) {
	ctx := Context{TaxedProfit: 0, ZucmanTax: 5, BaseGrowth: 10, EstimatedRevenue: 0, Params: model.DefaultEconomicParameters()}
	if got := (Financing{}).Contribution(ctx); got != 0 {
		t.Fatalf("financing with zero profit: got %v", got)
	}
	if got := (PriceDemand{}).Contribution(ctx); got != 0 {
		t.Fatalf("price/demand with zero revenue: got %v", got)
	}
	if got := (Competitiveness{}).Contribution(ctx); got != 0 {
		t.Fatalf("competitiveness with zero revenue: got %v", got)
	}
	// Investment falls back to the 0.1 ratio.
	want := 10 * (math.Pow(0.1, 0.4) - 1) * 0.4
	if got := (Investment{}).Contribution(ctx); math.Abs(got-want) > 1e-12 {
		t.Fatalf("investment fallback: got %v want %v", got, want)
	}
}

func TestSum(t *testing.T) {
	ctx := ctxFor(1e11, 8.571e10)
	want := 0.0
	for _, c := range Defaults() {
		want += c.Contribution(ctx)
	}
	if got := Sum(Defaults(), ctx); got != want {
		t.Fatalf("got %v want %v", got, want)
	}
	if got := Sum(nil, ctx); got != 0 {
		t.Fatalf("empty sum: got %v", got)
	}
}

func TestDefaultsOrder(t *testing.T) {
	want := []string{"investment", "price_demand", "competitiveness", "financing"}
	got := Defaults()
	if len(got) != len(want) {
		t.Fatalf("got %d channels", len(got))
	}
	for i, c := range got {
		if c.Name() != want[i] {
			t.Fatalf("channel %d: got %s want %s", i, c.Name(), want[i])
		}
	}
}
