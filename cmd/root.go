// Package cmd implements the tipcredit CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tipcredit/fica-tip-credit/internal/calculation"
	"github.com/tipcredit/fica-tip-credit/internal/config"
	"github.com/tipcredit/fica-tip-credit/internal/domain"
	"github.com/tipcredit/fica-tip-credit/internal/output"
)

var (
	flagFormat  string
	flagOutput  string
	flagVerbose bool

	prefs config.Preferences
)

var rootCmd = &cobra.Command{
	Use:   "tipcredit",
	Short: "FICA tip credit estimator",
	Long: "Estimate the employer FICA tip credit for tipped staff from location, server,\n" +
		"hours, wage and tip figures.",
	SilenceUsage:      true,
	PersistentPreRunE: loadPreferences,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "Output format (console, csv, html, json)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Write the report to this file, or a timestamped file in this directory")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log intermediate values to stderr")
}

func loadPreferences(cmd *cobra.Command, _ []string) error {
	p, err := config.LoadPreferences()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "  Preferences unreadable, using defaults: %v\n", err)
	}
	prefs = p
	if flagFormat == "" {
		flagFormat = prefs.Output.Format
	}
	return nil
}

// newCalculator builds a calculator wired to stderr when --verbose is set.
func newCalculator(cmd *cobra.Command) *calculation.CreditCalculator {
	calc := calculation.NewCreditCalculator()
	if flagVerbose {
		calc.SetLogger(calculation.WriterLogger{W: cmd.ErrOrStderr(), Debug: true})
	}
	return calc
}

// resolveFormatter looks up the requested formatter, applying the preferred theme to console output.
func resolveFormatter() (output.Formatter, error) {
	f, err := output.LookupFormatter(flagFormat)
	if err != nil {
		return nil, err
	}
	if _, ok := f.(output.ConsoleFormatter); ok {
		return output.ConsoleFormatter{Theme: prefs.Output.Theme}, nil
	}
	return f, nil
}

// emit writes the report to stdout, a file, or a timestamped file in a directory.
func emit(cmd *cobra.Command, report *domain.Report) error {
	f, err := resolveFormatter()
	if err != nil {
		return err
	}
	if flagOutput == "" {
		return output.Write(cmd.OutOrStdout(), f, report)
	}

	if info, err := os.Stat(flagOutput); err == nil && info.IsDir() {
		name, err := output.WriteFormatted(f, report, flagOutput)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "  Report written to %s\n", name)
		return nil
	}

	file, err := os.Create(flagOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagOutput, err)
	}
	defer file.Close()
	if err := output.Write(file, f, report); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "  Report written to %s\n", flagOutput)
	return nil
}

// printValidation lists validation messages in the same style the form uses.
func printValidation(w io.Writer, res domain.ValidationResult) {
	if res.IsValid {
		fmt.Fprintln(w, "  Input is valid.")
		return
	}
	fmt.Fprintf(w, "  Input has %d problem(s):\n", len(res.Errors))
	for _, e := range res.Errors {
		fmt.Fprintf(w, "    - %s\n", e)
	}
}
