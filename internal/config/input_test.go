package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tipcredit/fica-tip-credit/internal/calculation"
	"github.com/tipcredit/fica-tip-credit/internal/domain"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	assert.NotNil(t, NewInputParser())
}

func TestLoadFromFile_Success(t *testing.T) {
	// Minimal, well-formed YAML (spaces only)
	testConfig := "defaults:\n" +
		"  hours_per_month: 160\n" +
		"  min_wage_basis: 5.15\n" +
		"scenarios:\n" +
		"  - name: \"Downtown\"\n" +
		"    locations: 1\n" +
		"    servers: 12\n" +
		"    cash_wage_per_hour: 2.13\n" +
		"    tips_pct: 0.55\n" +
		"  - name: \"Harbor\"\n" +
		"    locations: 2\n" +
		"    servers: 8\n" +
		"    hours_per_month: 173\n" +
		"    cash_wage_per_hour: 8\n" +
		"    tips_pct: 0.6\n"

	config, err := NewInputParser().LoadFromFile(writeTemp(t, "scenarios.yaml", testConfig))
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 2)
	assert.Equal(t, "Downtown", config.Scenarios[0].Name)
	assert.Nil(t, config.Scenarios[0].HoursPerMonth, "defaults are applied at calculation time, not stored")
	require.NotNil(t, config.Defaults.HoursPerMonth)
	assert.Equal(t, 160, *config.Defaults.HoursPerMonth)
	assert.Equal(t, 173, *config.Scenarios[1].HoursPerMonth)
}

func TestLoadFromFile_JSON(t *testing.T) {
	testConfig := `{"scenarios": [{"name": "Solo", "locations": 1, "servers": 3, "cash_wage_per_hour": 4.5, "tips_pct": 0.4}]}`

	config, err := NewInputParser().LoadFromFile(writeTemp(t, "scenarios.json", testConfig))
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 1)
	assert.Equal(t, "4.5", config.Scenarios[0].CashWagePerHour.String())
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	config, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
scenarios:
	- name: "Tabs"
		locations: "not-a-number"
`
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "bad.yaml", testConfig))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidScenario(t *testing.T) {
	testConfig := "scenarios:\n" +
		"  - name: \"Broken\"\n" +
		"    locations: 0\n" +
		"    servers: 5\n" +
		"    cash_wage_per_hour: 8\n" +
		"    tips_pct: 1.5\n"

	_, err := NewInputParser().LoadFromFile(writeTemp(t, "broken.yaml", testConfig))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario 1 (Broken) validation failed")
	assert.Contains(t, err.Error(), "locations must be at least 1")
	assert.Contains(t, err.Error(), "tips percentage must be between 0 and 1")

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Errors, 2)
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()
	one, zero := 1, 0
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name   string
		config *domain.Configuration
		errMsg string
	}{
		{"example is valid", parser.CreateExampleConfiguration(), ""},
		{"no scenarios", &domain.Configuration{}, "no scenarios provided"},
		{"missing name", &domain.Configuration{Scenarios: []domain.Scenario{{}}}, "scenario name is required"},
		{"duplicate name", &domain.Configuration{Scenarios: []domain.Scenario{
			{Name: "A", PartialInput: domain.PartialInput{Locations: &one, Servers: &one}},
			{Name: "A", PartialInput: domain.PartialInput{Locations: &one, Servers: &one}},
		}}, `duplicate scenario name "A"`},
		{"zero default hours", &domain.Configuration{
			Defaults:  &domain.ScenarioDefaults{HoursPerMonth: &zero},
			Scenarios: []domain.Scenario{{Name: "A", PartialInput: domain.PartialInput{Locations: &one, Servers: &one}}},
		}, "hours per month must be at least 1"},
		{"negative default min wage", &domain.Configuration{
			Defaults:  &domain.ScenarioDefaults{MinWageBasis: &negative},
			Scenarios: []domain.Scenario{{Name: "A", PartialInput: domain.PartialInput{Locations: &one, Servers: &one}}},
		}, "minimum wage basis cannot be negative"},
		{"missing servers", &domain.Configuration{Scenarios: []domain.Scenario{
			{Name: "A", PartialInput: domain.PartialInput{Locations: &one}},
		}}, "servers must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateConfiguration(tt.config)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCreateExampleConfiguration(t *testing.T) {
	config := NewInputParser().CreateExampleConfiguration()
	require.Len(t, config.Scenarios, 2)
	assert.Equal(t, "Full-time servers", config.Scenarios[0].Name)
	assert.Equal(t, 10, *config.Scenarios[0].Servers)
	assert.Nil(t, config.Scenarios[1].MinWageBasis)
}

func TestParse_ZeroMinWageDefaultKept(t *testing.T) {
	src := "defaults:\n" +
		"  min_wage_basis: 0\n" +
		"scenarios:\n" +
		"  - name: A\n" +
		"    locations: 1\n" +
		"    servers: 1\n" +
		"    cash_wage_per_hour: 2\n" +
		"    tips_pct: 0.5\n"

	config, err := NewInputParser().Parse([]byte(src))
	require.NoError(t, err)
	require.NotNil(t, config.Defaults.MinWageBasis)
	assert.True(t, config.Defaults.MinWageBasis.IsZero())
	assert.Nil(t, config.Defaults.HoursPerMonth)

	report, err := calculation.NewCreditCalculator().RunScenarios(config)
	require.NoError(t, err)
	r := report.Scenarios[0]
	assert.True(t, r.Input.MinWageBasis.IsZero())
	assert.Equal(t, 173, r.Input.HoursPerMonth)
	assert.True(t, r.Result.NonCreditableTips.IsZero(), "got %s", r.Result.NonCreditableTips)
	assert.Equal(t, "346.00", r.Result.CreditableTips.StringFixed(2))
}

func TestInputParserWithBase(t *testing.T) {
	base := domain.InputDefaults{HoursPerMonth: 120, MinWageBasis: decimal.Zero}
	parser := NewInputParserWithBase(base)

	config, err := parser.Parse([]byte("scenarios:\n  - name: A\n    locations: 1\n    servers: 1\n"))
	require.NoError(t, err)
	d := parser.EffectiveDefaults(config)
	assert.Equal(t, 120, d.HoursPerMonth)
	assert.True(t, d.MinWageBasis.IsZero())

	config, err = parser.Parse([]byte("defaults:\n  hours_per_month: 160\nscenarios:\n  - name: A\n    locations: 1\n    servers: 1\n"))
	require.NoError(t, err)
	d = parser.EffectiveDefaults(config)
	assert.Equal(t, 160, d.HoursPerMonth, "file defaults win over the base")
	assert.True(t, d.MinWageBasis.IsZero())
}
