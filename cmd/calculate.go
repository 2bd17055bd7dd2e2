package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tipcredit/fica-tip-credit/internal/calculation"
	"github.com/tipcredit/fica-tip-credit/internal/config"
	"github.com/tipcredit/fica-tip-credit/internal/domain"
)

var calcFlags inputFlags

var calculateCmd = &cobra.Command{
	Use:     "calculate",
	Aliases: []string{"calc"},
	Short:   "Estimate the tip credit for one input or a scenario file",
	Example: "  tipcredit calculate -l 1 -s 10 --cash-wage 8 --tips-percent 60\n" +
		"  tipcredit calculate --file scenarios.yaml -f csv -o report.csv",
	RunE: runCalculate,
}

func init() {
	calcFlags.register(calculateCmd)
	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadScenarios(cmd, &calcFlags)
	if err != nil {
		return err
	}
	report, err := newCalculator(cmd).RunScenarios(cfg)
	if err != nil {
		return err
	}
	return emit(cmd, report)
}

// loadScenarios reads --file, or wraps the flag input as a single validated scenario.
// Saved preferences fill whatever the file's defaults block leaves out.
func loadScenarios(cmd *cobra.Command, f *inputFlags) (*domain.Configuration, error) {
	defaults := prefs.InputDefaults()

	if f.file != "" {
		parser := config.NewInputParserWithBase(defaults)
		cfg, err := parser.LoadFromFile(f.file)
		if err != nil {
			return nil, err
		}
		cfg.Defaults = domain.NewScenarioDefaults(parser.EffectiveDefaults(cfg))
		return cfg, nil
	}

	p, err := f.partial(cmd)
	if err != nil {
		return nil, err
	}
	if err := calculation.Validate(p.WithDefaults(defaults)).Err(); err != nil {
		return nil, err
	}
	return &domain.Configuration{
		Defaults:  domain.NewScenarioDefaults(defaults),
		Scenarios: []domain.Scenario{{Name: "Command line", PartialInput: p}},
	}, nil
}
