// Package config loads and saves the cierre.yaml worksheet configuration,
// the only state that survives between engine runs.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/cierre-dev/cierre/internal/classify"
)

// Config represents one company+period worksheet document. The engine
// treats it as opaque input: a malformed formula inside degrades to zero,
// it never blocks a run.
type Config struct {
	Company              CompanyConfig        `yaml:"company"`
	TaxFormula           string               `yaml:"tax_formula,omitempty"`
	TaxRatePercent       float64              `yaml:"tax_rate_percent" validate:"min=0,max=100"`
	LiquidIncomeFormula  string               `yaml:"liquid_income_formula,omitempty"`
	ReserveLegalPercent  float64              `yaml:"reserve_legal_percent" validate:"min=0,max=100"`
	OverrideReserveLegal bool                 `yaml:"override_reserve_legal"`
	AdjustmentRows       []AdjustmentRow      `yaml:"adjustment_rows,omitempty" validate:"dive"`
	ColumnOverrides      map[string]string    `yaml:"column_overrides,omitempty"`
	Classification       ClassificationConfig `yaml:"classification"`
}

// CompanyConfig identifies the company the period belongs to. The legal
// form decides legal-reserve applicability.
type CompanyConfig struct {
	Name      string `yaml:"name"`
	LegalForm string `yaml:"legal_form"`
}

// AdjustmentRow is a user-added worksheet row: a generated ID like "I2",
// a display label, and a literal or formula cell value.
type AdjustmentRow struct {
	ID      string `yaml:"id" validate:"required"`
	Label   string `yaml:"label"`
	Formula string `yaml:"formula"`
}

// ClassificationConfig overrides the built-in classification tables.
// Empty lists keep the Spanish defaults.
type ClassificationConfig struct {
	VariableNaturePatterns     []string `yaml:"variable_nature_patterns,omitempty"`
	NonTaxablePatterns         []string `yaml:"non_taxable_patterns,omitempty"`
	AccumulatedResultsPatterns []string `yaml:"accumulated_results_patterns,omitempty"`
	ReserveLegalForms          []string `yaml:"reserve_legal_forms,omitempty"`
}

// DefaultReserveLegalForms lists the legal forms that require a legal
// reserve when no override is configured.
var DefaultReserveLegalForms = []string{
	"s.a.",
	"sociedad anonima",
	"s.r.l.",
	"sociedad de responsabilidad limitada",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates a cierre.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new period.
func Default(companyName, legalForm string) *Config {
	return &Config{
		Company: CompanyConfig{
			Name:      companyName,
			LegalForm: legalForm,
		},
		TaxRatePercent:      25,
		ReserveLegalPercent: 5,
	}
}

// RequiresReserve reports whether the company's legal form mandates a
// legal reserve. Matching is accent- and case-insensitive.
func (c *Config) RequiresReserve() bool {
	forms := c.Classification.ReserveLegalForms
	if len(forms) == 0 {
		forms = DefaultReserveLegalForms
	}
	legal := classify.Fold(c.Company.LegalForm)
	if legal == "" {
		return false
	}
	for _, form := range forms {
		if classify.Fold(form) == legal {
			return true
		}
	}
	return false
}
