package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"zucit/internal/model"
)

// ErrCompanyNotFound is returned by Catalog.Lookup for unknown ids.
var ErrCompanyNotFound = errors.New("company not found")

// Catalog is a read-only set of example company profiles keyed by id.
type Catalog struct {
	byID map[string]model.CompanyProfile
}

// catalogFile is the on-disk shape for both YAML and JSON catalogs.
type catalogFile struct {
	Companies []model.CompanyProfile `json:"companies" yaml:"companies"`
}

// DefaultCatalog returns the built-in example companies.
func DefaultCatalog() *Catalog {
	c, _ := NewCatalog([]model.CompanyProfile{
		{ID: "apple", Name: "Apple", Valuation: 3_000_000_000_000, Profit: 100_000_000_000, Employees: 164_000, GrowthRate: 0.08},
		{ID: "microsoft", Name: "Microsoft", Valuation: 2_800_000_000_000, Profit: 83_000_000_000, Employees: 221_000, GrowthRate: 0.12},
		{ID: "google", Name: "Google/Alphabet", Valuation: 1_700_000_000_000, Profit: 76_000_000_000, Employees: 190_000, GrowthRate: 0.10},
		{ID: "startup", Name: "Startup Tech", Valuation: 50_000_000, Profit: 2_000_000, Employees: 50, GrowthRate: 0.25},
	})
	return c
}

// NewCatalog indexes profiles by id. Ids must be non-empty and unique.
func NewCatalog(profiles []model.CompanyProfile) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]model.CompanyProfile, len(profiles))}
	for _, p := range profiles {
		if p.ID == "" {
			return nil, errors.New("company id is required")
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate company id %q", p.ID)
		}
		c.byID[p.ID] = p
	}
	return c, nil
}

// LoadCatalog reads a catalog from a .json, .yaml or .yml file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f catalogFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(raw, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &f)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return NewCatalog(f.Companies)
}

// Lookup returns the profile for id or ErrCompanyNotFound.
func (c *Catalog) Lookup(id string) (model.CompanyProfile, error) {
	p, ok := c.byID[id]
	if !ok {
		return model.CompanyProfile{}, fmt.Errorf("%w: %s", ErrCompanyNotFound, id)
	}
	return p, nil
}

// List returns every profile sorted by id.
func (c *Catalog) List() []model.CompanyProfile {
	out := make([]model.CompanyProfile, 0, len(c.byID))
	for _, p := range c.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c *Catalog) Len() int { return len(c.byID) }

// LoadCatalogOrDefault loads path, or returns DefaultCatalog when path is empty.
func LoadCatalogOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalog(path)
}
