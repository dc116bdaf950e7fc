package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"zucit/internal/analysis"
	"zucit/internal/api/handlers"
	"zucit/internal/config"
	"zucit/internal/data"
	"zucit/internal/logging"
	"zucit/internal/model"
	"zucit/internal/projection"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "zucit",
	Short:         "Project a company under the Zucman tax and compare it with the untaxed baseline",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup()
	},
}

var flags struct {
	config     string
	company    string
	valuation  float64
	profit     float64
	employees  int
	growthRate float64 // percent
	years      int
	out        string
	zucmanRate float64
}

// loaded by setup
var (
	cfg     *config.Config
	catalog *data.Catalog
)

func main() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", os.Getenv(config.EnvConfig), "Path to YAML config (optional)")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one projection and print its KPIs",
		Example: "  zucit simulate --company apple --years 10\n" +
			"  zucit simulate --valuation 5e7 --profit 2e6 --employees 50 --growth-rate 25 --out results/startup.xlsx",
		RunE: runSimulate,
	}
	simulateCmd.Flags().StringVar(&flags.company, "company", "", "Catalog company id (see `zucit companies`)")
	simulateCmd.Flags().Float64Var(&flags.valuation, "valuation", 0, "Company valuation in euros")
	simulateCmd.Flags().Float64Var(&flags.profit, "profit", 0, "Annual profit in euros")
	simulateCmd.Flags().IntVar(&flags.employees, "employees", 0, "Headcount")
	simulateCmd.Flags().Float64Var(&flags.growthRate, "growth-rate", 0, "Annual growth rate in percent")
	simulateCmd.Flags().IntVar(&flags.years, "years", 0, "Horizon in years (default from config)")
	simulateCmd.Flags().StringVar(&flags.out, "out", "", "Optional export path (.csv or .xlsx)")
	simulateCmd.Flags().Float64Var(&flags.zucmanRate, "zucman-tax-rate", 0, "Override the Zucman tax rate (fraction, e.g. 0.02)")

	companiesCmd := &cobra.Command{
		Use:   "companies",
		Short: "List the example companies",
		RunE:  runCompanies,
	}

	paramsCmd := &cobra.Command{
		Use:   "params",
		Short: "Print the active economic parameters",
		RunE:  runParams,
	}

	rootCmd.AddCommand(simulateCmd, companiesCmd, paramsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setup() error {
	var err error
	cfg, err = config.Load(flags.config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// Results go to stdout, so console logs move to stderr.
	if out := cfg.Logging.Output; out == "" || out == "stdout" {
		slog.SetDefault(logging.NewWithWriter(cfg.Logging, os.Stderr))
	} else if _, err := logging.Init(cfg.Logging); err != nil {
		return err
	}
	catalog, err = data.LoadCatalogOrDefault(cfg.CatalogFile)
	return err
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	in, label, err := simulationInput(cmd)
	if err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	econ := cfg.Economics
	if cmd.Flags().Changed("zucman-tax-rate") {
		econ = config.MergeEconomics(econ, config.EconomicsConfig{ZucmanTaxRate: &flags.zucmanRate})
	}
	params := econ.ToModelParams()
	if err := params.Validate(); err != nil {
		return err
	}

	engine := projection.New(params)
	res := engine.Run(in)
	slog.Debug("simulation finished", "company", label, "bankruptcy_risk", res.KPIs.Level)

	fmt.Printf("%s: %d years (%d-%d)\n\n", label, len(res.Years)-1, res.Years[0], res.Years[len(res.Years)-1])
	printSummary(res)

	if flags.out != "" {
		if err := export(flags.out, res); err != nil {
			return err
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(res.Years), flags.out)
	}
	return nil
}

func simulationInput(cmd *cobra.Command) (model.SimulationInput, string, error) {
	var years *int
	if cmd.Flags().Changed("years") {
		years = &flags.years
	}

	if flags.company != "" {
		p, err := catalog.Lookup(flags.company)
		if err != nil {
			return model.SimulationInput{}, "", err
		}
		return p.Input(years), p.Name, nil
	}

	for _, name := range []string{"valuation", "profit", "employees", "growth-rate"} {
		if !cmd.Flags().Changed(name) {
			return model.SimulationInput{}, "", fmt.Errorf("--%s is required without --company", name)
		}
	}
	return model.SimulationInput{
		Valuation:  flags.valuation,
		Profit:     flags.profit,
		Employees:  flags.employees,
		GrowthRate: flags.growthRate / 100,
		Years:      years,
	}, "Custom company", nil
}

func printSummary(res *model.SimulationResult) {
	s := analysis.Summarize(res)
	for _, line := range s.Lines {
		fmt.Println("  " + line)
	}
	if s.Warning != "" {
		fmt.Println("\n  WARNING: " + s.Warning)
	}
}

func export(path string, res *model.SimulationResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return projection.WriteTrajectoryCSVFile(path, res)
	case ".xlsx":
		f, err := projection.WriteTrajectoryXLSX(res)
		if err != nil {
			return err
		}
		defer f.Close()
		return f.SaveAs(path)
	default:
		return errors.New("--out must end in .csv or .xlsx")
	}
}

func runCompanies(_ *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVALUATION\tPROFIT\tEMPLOYEES\tGROWTH")
	for _, c := range catalog.List() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.1f%%\n",
			c.ID, c.Name,
			analysis.FormatCurrency(c.Valuation, true),
			analysis.FormatCurrency(c.Profit, true),
			analysis.GroupThousands(fmt.Sprint(c.Employees)),
			c.GrowthRate*100,
		)
	}
	return w.Flush()
}

func runParams(_ *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVALUE\tDESCRIPTION")
	for _, p := range handlers.DescribeParameters(cfg.Economics.ToModelParams()) {
		fmt.Fprintf(w, "%s\t%v\t%s\n", p.Name, p.Value, p.Description)
	}
	return w.Flush()
}
