package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"zucit/internal/logging"
	"zucit/internal/model"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvHost      = "ZUCIT_HOST"
	EnvPort      = "ZUCIT_PORT"
	EnvDebug     = "ZUCIT_DEBUG"
	EnvConfig    = "ZUCIT_CONFIG"
	EnvStaticDir = "STATIC_DIR"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Economics EconomicsConfig `yaml:"economics"`
	Logging   logging.Config  `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	// Optional: YAML or JSON company catalog replacing the built-in examples.
	CatalogFile string `yaml:"catalog_file"`
}

type ServerConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Debug     bool   `yaml:"debug"`
	StaticDir string `yaml:"static_dir"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

// EconomicsConfig overrides individual economic parameters. Unset (nil)
// fields keep the reference calibration, so an explicit 0 is honoured.
type EconomicsConfig struct {
	ZucmanTaxRate   *float64 `yaml:"zucman_tax_rate"`
	NormalProfitTax *float64 `yaml:"normal_profit_tax"`
	DefaultHorizon  *int     `yaml:"default_horizon"`
	BaseYear        *int     `yaml:"base_year"`

	InvestmentElasticity    *float64 `yaml:"investment_elasticity"`
	InvestmentRatioOfProfit *float64 `yaml:"investment_ratio_of_profit"`
	PricePassThrough        *float64 `yaml:"price_pass_through"`
	DemandElasticity        *float64 `yaml:"demand_elasticity"`
	MarketShareElasticity   *float64 `yaml:"market_share_elasticity"`
	FinancingCostImpact     *float64 `yaml:"financing_cost_impact"`

	ProductivityEmploymentElasticity *float64 `yaml:"productivity_employment_elasticity"`
	DemandEmploymentElasticity       *float64 `yaml:"demand_employment_elasticity"`
}

// Default returns the built-in configuration: local server on 127.0.0.1:5001
// in debug mode, reference economics, text logs on stdout.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:  "127.0.0.1",
			Port:  5001,
			Debug: true,
		},
		Logging: logging.DefaultConfig(),
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     10,
			Burst:   20,
		},
	}
}

// Load reads path (defaults only when empty), applies environment overrides and validates.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked overlays the YAML file at path onto Default, without env or validation.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// Relative catalog paths are resolved against the config file directory
	// when that file exists, otherwise left relative to the cwd.
	if c.CatalogFile != "" && !filepath.IsAbs(c.CatalogFile) {
		cand := filepath.Join(filepath.Dir(path), c.CatalogFile)
		if _, err := os.Stat(cand); err == nil {
			c.CatalogFile = cand
		}
	}
	return c, nil
}

// ApplyEnv overrides server settings from the environment. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvHost); ok && v != "" {
		c.Server.Host = v
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		c.Server.Port = port
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		c.Server.Debug = parseBool(v)
	}
	if v, ok := lookup(EnvStaticDir); ok && v != "" {
		c.Server.StaticDir = v
	}
	return nil
}

// parseBool accepts the usual truthy spellings; anything else is false.
func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "yes", "y", "on":
		return true
	}
	return false
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Host == "" {
		return errors.New("server.host is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return errors.New("rate_limit.rps and rate_limit.burst must be > 0 when enabled")
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Economics.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("economics config invalid: %w", err)
	}
	return nil
}

// ToModelParams applies the overrides on top of model.DefaultEconomicParameters.
func (e EconomicsConfig) ToModelParams() model.EconomicParameters {
	p := model.DefaultEconomicParameters()
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&p.ZucmanTaxRate, e.ZucmanTaxRate)
	setF(&p.NormalProfitTax, e.NormalProfitTax)
	if e.DefaultHorizon != nil {
		p.DefaultHorizon = *e.DefaultHorizon
	}
	if e.BaseYear != nil {
		p.BaseYear = *e.BaseYear
	}
	setF(&p.InvestmentElasticity, e.InvestmentElasticity)
	setF(&p.InvestmentRatioOfProfit, e.InvestmentRatioOfProfit)
	setF(&p.PricePassThrough, e.PricePassThrough)
	setF(&p.DemandElasticity, e.DemandElasticity)
	setF(&p.MarketShareElasticity, e.MarketShareElasticity)
	setF(&p.FinancingCostImpact, e.FinancingCostImpact)
	setF(&p.ProductivityEmploymentElasticity, e.ProductivityEmploymentElasticity)
	setF(&p.DemandEmploymentElasticity, e.DemandEmploymentElasticity)
	return p
}

// MergeEconomics overlays the fields set in override onto base.
// The CLI uses it to apply flag overrides on top of a loaded file.
func MergeEconomics(base, override EconomicsConfig) EconomicsConfig {
	out := base
	pickF := func(dst **float64, src *float64) {
		if src != nil {
			*dst = src
		}
	}
	pickF(&out.ZucmanTaxRate, override.ZucmanTaxRate)
	pickF(&out.NormalProfitTax, override.NormalProfitTax)
	if override.DefaultHorizon != nil {
		out.DefaultHorizon = override.DefaultHorizon
	}
	if override.BaseYear != nil {
		out.BaseYear = override.BaseYear
	}
	pickF(&out.InvestmentElasticity, override.InvestmentElasticity)
	pickF(&out.InvestmentRatioOfProfit, override.InvestmentRatioOfProfit)
	pickF(&out.PricePassThrough, override.PricePassThrough)
	pickF(&out.DemandElasticity, override.DemandElasticity)
	pickF(&out.MarketShareElasticity, override.MarketShareElasticity)
	pickF(&out.FinancingCostImpact, override.FinancingCostImpact)
	pickF(&out.ProductivityEmploymentElasticity, override.ProductivityEmploymentElasticity)
	pickF(&out.DemandEmploymentElasticity, override.DemandEmploymentElasticity)
	return out
}
