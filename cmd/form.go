package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/tipcredit/fica-tip-credit/internal/calculation"
	"github.com/tipcredit/fica-tip-credit/internal/domain"
	"github.com/tipcredit/fica-tip-credit/internal/form"
)

var flagAccessible bool

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Enter inputs interactively and show the estimate",
	RunE:  runForm,
}

func init() {
	formCmd.Flags().BoolVar(&flagAccessible, "accessible", false, "Use plain prompts instead of the full-screen form")
	rootCmd.AddCommand(formCmd)
}

func runForm(cmd *cobra.Command, _ []string) error {
	defaults := prefs.InputDefaults()
	p, err := form.Collect(defaults, flagAccessible)
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Fprintln(cmd.ErrOrStderr(), "  Cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	res := calculation.Validate(p.WithDefaults(defaults))
	if !res.IsValid {
		printValidation(cmd.ErrOrStderr(), res)
		return res.Err()
	}

	report, err := newCalculator(cmd).RunScenarios(&domain.Configuration{
		Defaults:  domain.NewScenarioDefaults(defaults),
		Scenarios: []domain.Scenario{{Name: "Form entry", PartialInput: p}},
	})
	if err != nil {
		return err
	}
	return emit(cmd, report)
}
