package risk

import (
	"math"
	"testing"

	"zucit/internal/model"
)

func burnSnapshot(initialValuation, zucmanTax float64, years int) Snapshot {
	return Snapshot{
		InitialValuation: initialValuation,
		InitialProfit:    1_000_000,
		InitialEmployees: 100,
		FinalProfit:      0,
		FinalValuation:   zucmanTax / 0.02857,
		FinalZucmanTax:   zucmanTax,
		Years:            years,
	}
}

func TestAssess_BurnRateBuckets(t *testing.T) {
	c := New(2024)

	cases := []struct {
		name      string
		valuation float64
		tax       float64
		level     model.RiskLevel
		status    model.SurvivalStatus
		year      *int
	}{
		// reserves 60, burn 20/month -> 3 months
		{"imminent", 1200, 240, model.RiskImminentBankruptcy, model.StatusFailed, intPtr(2044)},
		// reserves 60, burn 10/month -> exactly 6 months
		{"six months is severe", 1200, 120, model.RiskSevereDifficulty, model.StatusCritical, intPtr(2044)},
		// reserves 90, burn 6/month -> 15 months
		{"fifteen months", 1800, 72, model.RiskSevereDifficulty, model.StatusCritical, intPtr(2045)},
		// reserves 90, burn 5/month -> exactly 18 months
		{"eighteen months is strained", 1800, 60, model.RiskStrainedSituation, model.StatusStruggling, nil},
		{"long runway", 1e9, 60, model.RiskStrainedSituation, model.StatusStruggling, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Assess(burnSnapshot(tc.valuation, tc.tax, 20))
			if got.Level != tc.level {
				t.Fatalf("level: got %s want %s", got.Level, tc.level)
			}
			if got.Status != tc.status {
				t.Fatalf("status: got %s want %s", got.Status, tc.status)
			}
			assertYear(t, got.BankruptcyYear, tc.year)
		})
	}
}

func TestAssess_MarginBuckets(t *testing.T) {
	c := New(2024)
	// initial profit 8 -> estimated revenue 100, so net profit == margin in percent.
	base := Snapshot{InitialValuation: 1000, InitialProfit: 8, Years: 10}

	cases := []struct {
		name   string
		net    float64
		level  model.RiskLevel
		status model.SurvivalStatus
		year   *int
	}{
		{"zero margin", 0, model.RiskCriticalMargin, model.StatusCritical, intPtr(2037)},
		{"thin margin", 1.5, model.RiskCriticalMargin, model.StatusCritical, intPtr(2037)},
		{"two percent", 2, model.RiskHeightenedMonitoring, model.StatusWarning, nil},
		{"four percent", 4, model.RiskHeightenedMonitoring, model.StatusWarning, nil},
		{"five percent", 5, model.RiskStableSituation, model.StatusHealthy, nil},
		{"wide margin", 30, model.RiskStableSituation, model.StatusHealthy, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := base
			s.FinalProfit = tc.net + 1
			s.FinalZucmanTax = 1
			got := c.Assess(s)
			if got.Level != tc.level || got.Status != tc.status {
				t.Fatalf("got %s/%s want %s/%s", got.Level, got.Status, tc.level, tc.status)
			}
			assertYear(t, got.BankruptcyYear, tc.year)
		})
	}
}

func TestAssess_NonPositiveRevenueFallsBackToZeroMargin(t *testing.T) {
	got := New(2024).Assess(Snapshot{InitialProfit: -5, FinalProfit: 10, Years: 1})
	if got.Level != model.RiskCriticalMargin {
		t.Fatalf("got %s want %s", got.Level, model.RiskCriticalMargin)
	}
	assertYear(t, got.BankruptcyYear, intPtr(2028))
}

func TestAssess_BaseYearIsConfigurable(t *testing.T) {
	got := New(2030).Assess(burnSnapshot(1200, 240, 5))
	assertYear(t, got.BankruptcyYear, intPtr(2035))
}

func TestMonthsOfSurvival(t *testing.T) {
	if m := MonthsOfSurvival(1200, -120); math.Abs(m-6) > 1e-9 {
		t.Fatalf("months: got %v want 6", m)
	}
	if m := MonthsOfSurvival(1200, 0); !math.IsInf(m, 1) {
		t.Fatalf("no burn should be +Inf, got %v", m)
	}
}

func TestNetMargin(t *testing.T) {
	if m := NetMargin(8, 4); math.Abs(m-0.04) > 1e-12 {
		t.Fatalf("margin: got %v want 0.04", m)
	}
	if m := NetMargin(0, 4); m != 0 {
		t.Fatalf("zero revenue margin: got %v want 0", m)
	}
}

func TestRiskLevelLabel(t *testing.T) {
	if l := model.RiskImminentBankruptcy.Label(); l != "Imminent bankruptcy" {
		t.Fatalf("label: got %q", l)
	}
	if l := model.RiskLevel("unknown").Label(); l != "unknown" {
		t.Fatalf("fallback label: got %q", l)
	}
}

func assertYear(t *testing.T, got, want *int) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Fatalf("bankruptcy year: got %v want %v", deref(got), deref(want))
	case *got != *want:
		t.Fatalf("bankruptcy year: got %d want %d", *got, *want)
	}
}

func deref(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func intPtr(v int) *int { return &v }
