package main

import (
	"flag"
	"fmt"
	"os"

	"zucit/internal/analysis"
	"zucit/internal/config"
	"zucit/internal/data"
	"zucit/internal/projection"
)

// Demo:
// - Pick one example company from the catalog
// - Project it with and without the Zucman tax
// - Print both trajectories side by side, then the KPIs and findings
func main() {
	company := flag.String("company", "apple", "Catalog company id")
	years := flag.Int("years", 20, "Number of years to simulate")
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	outCSV := flag.String("out", "", "Optional path to write the trajectories CSV")
	flag.Parse()

	cfg, err := config.LoadUnchecked(*cfgPath)
	if err != nil {
		panic(err)
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	catalog, err := data.LoadCatalogOrDefault(cfg.CatalogFile)
	if err != nil {
		panic(err)
	}
	profile, err := catalog.Lookup(*company)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	in := profile.Input(years)
	if err := in.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	engine := projection.New(cfg.Economics.ToModelParams())
	res := engine.Run(in)

	fmt.Printf("%s: valuation %s, profit %s, %d employees, growth %.1f%%\n\n",
		profile.Name,
		analysis.FormatCurrency(profile.Valuation, true),
		analysis.FormatCurrency(profile.Profit, true),
		profile.Employees,
		profile.GrowthRate*100,
	)

	fmt.Printf("%-6s %12s %12s %9s %9s %9s %9s\n", "year", "profit", "profit(Z)", "jobs", "jobs(Z)", "price", "price(Z)")
	base, taxed := res.NoZucman, res.WithZucman
	for i, y := range res.Years {
		fmt.Printf("%-6d %12s %12s %9d %9d %9.2f %9.2f\n",
			y,
			analysis.FormatCurrency(base.Profits[i], true),
			analysis.FormatCurrency(taxed.Profits[i], true),
			base.Employees[i],
			taxed.Employees[i],
			base.Prices[i],
			taxed.Prices[i],
		)
	}

	k := res.KPIs
	fmt.Printf("\nprofit loss        %6.1f%%  (%s)\n", k.ProfitLossPercent, analysis.FormatCurrency(k.ProfitLossAmount, true))
	fmt.Printf("jobs lost          %6.1f%%  (%d)\n", k.JobsLostPercent, k.JobsLost)
	fmt.Printf("price increase     %6.1f%%\n", k.PriceIncreasePercent)
	fmt.Printf("tax collected      %s\n", analysis.FormatCurrency(k.TotalZucmanTaxCollected, true))
	fmt.Printf("tax efficiency     %.2f\n", k.TaxEfficiency)
	fmt.Printf("bankruptcy risk    %s\n", k.Level.Label())

	s := analysis.Summarize(res)
	if s.Warning != "" {
		fmt.Printf("\n%s\n", s.Warning)
	}

	if *outCSV != "" {
		if err := projection.WriteTrajectoryCSVFile(*outCSV, res); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}
