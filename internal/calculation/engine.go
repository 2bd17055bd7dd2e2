package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tipcredit/fica-tip-credit/internal/domain"
)

// RunScenarios resolves every scenario against the file defaults, calculates
// each one and sums the total credit across them.
func (cc *CreditCalculator) RunScenarios(config *domain.Configuration) (*domain.Report, error) {
	if config == nil || len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}

	defaults := EffectiveDefaults(config.Defaults)
	report := &domain.Report{
		Scenarios:   make([]domain.ScenarioResult, 0, len(config.Scenarios)),
		TotalCredit: decimal.Zero,
		Assumptions: GenerateAssumptions(defaults, cc.Rates),
	}

	for _, scenario := range config.Scenarios {
		in := scenario.PartialInput.Resolve(defaults)
		result, err := cc.Calculate(in)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		cc.Logger.Infof("scenario %q: total credit %s", scenario.Name, result.TotalCredit.StringFixed(2))
		report.Scenarios = append(report.Scenarios, domain.ScenarioResult{
			Name:   scenario.Name,
			Input:  in,
			Result: *result,
		})
		report.TotalCredit = report.TotalCredit.Add(result.TotalCredit)
	}

	return report, nil
}

// EffectiveDefaults overlays file-level defaults on the built-in ones.
func EffectiveDefaults(fileDefaults *domain.ScenarioDefaults) domain.InputDefaults {
	return fileDefaults.Over(DefaultInputDefaults())
}

// GenerateAssumptions lists the modeling assumptions behind a report.
func GenerateAssumptions(d domain.InputDefaults, rates EmployerFICARates) []string {
	hundred := decimal.NewFromInt(100)
	return []string{
		fmt.Sprintf("Credit rate: %s%% (Social Security %s%% + Medicare %s%%, employer share)",
			rates.CreditRate().Mul(hundred).StringFixed(2),
			rates.SSRate.Mul(hundred).StringFixed(2),
			rates.MedicareRate.Mul(hundred).StringFixed(2)),
		"Social Security wage base cap not applied",
		fmt.Sprintf("Minimum wage basis: $%s/hour unless overridden", d.MinWageBasis.StringFixed(2)),
		fmt.Sprintf("Hours per month: %d unless overridden", d.HoursPerMonth),
		fmt.Sprintf("Credit window: %d years of %d identical months", CreditYears, MonthsPerYear),
	}
}
