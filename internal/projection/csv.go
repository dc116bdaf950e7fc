package projection

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"zucit/internal/model"
)

// TrajectoryHeader is the column layout shared by the CSV and XLSX exports.
var TrajectoryHeader = []string{
	"year",
	"no_zucman_profit",
	"no_zucman_valuation",
	"no_zucman_price",
	"no_zucman_employees",
	"no_zucman_state_revenue",
	"with_zucman_profit",
	"with_zucman_valuation",
	"with_zucman_price",
	"with_zucman_employees",
	"with_zucman_state_revenue",
}

// WriteTrajectoryCSV writes one row per simulated year with both scenarios side by side.
func WriteTrajectoryCSV(out io.Writer, res *model.SimulationResult) error {
	w := csv.NewWriter(out)

	if err := w.Write(TrajectoryHeader); err != nil {
		return err
	}

	base, taxed := res.NoZucman, res.WithZucman
	for i, year := range res.Years {
		row := []string{
			strconv.Itoa(year),
			fmtMoney(base.Profits[i]),
			fmtMoney(base.Valuations[i]),
			fmtIndex(base.Prices[i]),
			strconv.Itoa(base.Employees[i]),
			fmtMoney(base.StateRevenue[i]),
			fmtMoney(taxed.Profits[i]),
			fmtMoney(taxed.Valuations[i]),
			fmtIndex(taxed.Prices[i]),
			strconv.Itoa(taxed.Employees[i]),
			fmtMoney(taxed.StateRevenue[i]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteTrajectoryCSVFile writes the CSV to path, reporting a failed close
// when the rows themselves were written.
func WriteTrajectoryCSVFile(path string, res *model.SimulationResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteTrajectoryCSV(f, res)
}

// fmtMoney renders an amount with two decimals without float noise.
func fmtMoney(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return decimal.NewFromFloat(x).StringFixed(2)
}

func fmtIndex(x float64) string {
	return strconv.FormatFloat(x, 'f', 4, 64)
}
