package projection

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"zucit/internal/model"
)

const (
	trajectorySheet = "Trajectories"
	kpiSheet        = "KPIs"
)

// WriteTrajectoryXLSX builds a workbook with the yearly trajectories and the KPI block.
func WriteTrajectoryXLSX(res *model.SimulationResult) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", trajectorySheet); err != nil {
		return nil, err
	}

	for i, h := range TrajectoryHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(trajectorySheet, cell, h); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(trajectorySheet, 1, 1, headerStyle); err != nil {
		return nil, err
	}

	base, taxed := res.NoZucman, res.WithZucman
	for i, year := range res.Years {
		row := []any{
			year,
			base.Profits[i], base.Valuations[i], base.Prices[i], base.Employees[i], base.StateRevenue[i],
			taxed.Profits[i], taxed.Valuations[i], taxed.Prices[i], taxed.Employees[i], taxed.StateRevenue[i],
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(trajectorySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(kpiSheet); err != nil {
		return nil, err
	}
	for i, kv := range kpiRows(res.KPIs) {
		row := i + 1
		f.SetCellValue(kpiSheet, fmt.Sprintf("A%d", row), kv[0])
		f.SetCellValue(kpiSheet, fmt.Sprintf("B%d", row), kv[1])
	}

	return f, nil
}

func kpiRows(k model.KPIs) [][2]any {
	var year any = ""
	if k.BankruptcyYear != nil {
		year = *k.BankruptcyYear
	}
	return [][2]any{
		{"profit_loss_percent", k.ProfitLossPercent},
		{"profit_loss_amount", k.ProfitLossAmount},
		{"jobs_lost", k.JobsLost},
		{"jobs_lost_percent", k.JobsLostPercent},
		{"additional_tax_revenue", k.AdditionalTaxRevenue},
		{"total_zucman_tax_collected", k.TotalZucmanTaxCollected},
		{"tax_efficiency", k.TaxEfficiency},
		{"price_increase_percent", k.PriceIncreasePercent},
		{"price_increase_absolute", k.PriceIncreaseAbsolute},
		{"bankruptcy_risk", string(k.Level)},
		{"bankruptcy_year", year},
		{"survival_status", string(k.Status)},
	}
}
