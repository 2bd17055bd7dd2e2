package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tipcredit/fica-tip-credit/internal/calculation"
	"github.com/tipcredit/fica-tip-credit/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct {
	// Base supplies hours and minimum wage where a file's defaults block is silent.
	Base domain.InputDefaults
}

// NewInputParser creates a new input parser using the built-in defaults
func NewInputParser() *InputParser {
	return &InputParser{Base: calculation.DefaultInputDefaults()}
}

// NewInputParserWithBase creates a parser that layers file defaults over base,
// typically the user's saved preferences.
func NewInputParserWithBase(base domain.InputDefaults) *InputParser {
	return &InputParser{Base: base}
}

// EffectiveDefaults returns the file's defaults layered over the parser's base.
func (ip *InputParser) EffectiveDefaults(config *domain.Configuration) domain.InputDefaults {
	return config.Defaults.Over(ip.Base)
}

// LoadFromFile loads scenarios from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates scenario file contents. JSON is accepted as a YAML subset.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. Scenario inputs are
// checked after file and built-in defaults are applied.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateDefaults(config.Defaults); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	defaults := ip.EffectiveDefaults(config)
	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if strings.TrimSpace(scenario.Name) == "" {
			return fmt.Errorf("scenario %d: scenario name is required", i+1)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate scenario name %q", i+1, scenario.Name)
		}
		seen[scenario.Name] = true

		res := calculation.Validate(scenario.PartialInput.WithDefaults(defaults))
		if err := res.Err(); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i+1, scenario.Name, err)
		}
	}

	return nil
}

// validateDefaults rejects file defaults that could never produce a valid scenario
func (ip *InputParser) validateDefaults(d *domain.ScenarioDefaults) error {
	if d == nil {
		return nil
	}
	if d.HoursPerMonth != nil && *d.HoursPerMonth < 1 {
		return fmt.Errorf("hours per month must be at least 1")
	}
	if d.MinWageBasis != nil && d.MinWageBasis.IsNegative() {
		return fmt.Errorf("minimum wage basis cannot be negative")
	}
	return nil
}

// CreateExampleConfiguration creates an example scenario configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	one, two, ten, twelve := 1, 2, 10, 12
	hours, partTime := calculation.DefaultHoursPerMonth, 120
	wage := decimal.NewFromInt(8)
	tippedWage := decimal.RequireFromString("2.13")
	tips := decimal.RequireFromString("0.60")
	barTips := decimal.RequireFromString("0.55")
	minWage := calculation.DefaultMinWageBasis

	return &domain.Configuration{
		Defaults: domain.NewScenarioDefaults(calculation.DefaultInputDefaults()),
		Scenarios: []domain.Scenario{
			{
				Name: "Full-time servers",
				PartialInput: domain.PartialInput{
					Locations:       &one,
					Servers:         &ten,
					HoursPerMonth:   &hours,
					CashWagePerHour: &wage,
					TipsPct:         &tips,
					MinWageBasis:    &minWage,
				},
			},
			{
				Name: "Part-time bar staff",
				PartialInput: domain.PartialInput{
					Locations:       &two,
					Servers:         &twelve,
					HoursPerMonth:   &partTime,
					CashWagePerHour: &tippedWage,
					TipsPct:         &barTips,
				},
			},
		},
	}
}
