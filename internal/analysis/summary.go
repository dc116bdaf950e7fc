// Package analysis turns a simulation result into human-readable findings.
package analysis

import (
	"fmt"
	"strconv"

	"zucit/internal/model"
)

// LowEfficiencyWarning is attached when the tax collects less than the value it destroys.
const LowEfficiencyWarning = "Tax efficiency is below 1: the tax destroys more value than it collects."

type Summary struct {
	Lines     []string `json:"lines"`
	RiskLabel string   `json:"risk_label"`
	Warning   string   `json:"warning,omitempty"`
}

func Summarize(res *model.SimulationResult) Summary {
	k := res.KPIs

	revenue := fmt.Sprintf("Additional state revenue: +%s", FormatCurrency(k.AdditionalTaxRevenue, true))
	if k.AdditionalTaxRevenue < 0 {
		revenue = fmt.Sprintf("State revenue lost: %s", FormatCurrency(k.AdditionalTaxRevenue, true))
	}

	risk := "Bankruptcy risk: " + k.Level.Label()
	if k.BankruptcyYear != nil {
		risk += fmt.Sprintf(" (around %d)", *k.BankruptcyYear)
	}

	s := Summary{
		Lines: []string{
			fmt.Sprintf("Cumulative profit loss: %s (%.1f%%)", FormatCurrency(k.ProfitLossAmount, false), k.ProfitLossPercent),
			fmt.Sprintf("Jobs lost: %s (%.1f%%)", GroupThousands(strconv.Itoa(k.JobsLost)), k.JobsLostPercent),
			fmt.Sprintf("Price increase: %+.1f%%", k.PriceIncreasePercent),
			revenue,
			fmt.Sprintf("Zucman tax collected: %s", FormatCurrency(k.TotalZucmanTaxCollected, true)),
			fmt.Sprintf("Tax efficiency: %.2f€ collected per 1€ of value destroyed", k.TaxEfficiency),
			risk,
		},
		RiskLabel: k.Level.Label(),
	}
	if k.TaxEfficiency < 1 {
		s.Warning = LowEfficiencyWarning
	}
	return s
}
