package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tipcredit/fica-tip-credit/internal/config"
	"github.com/tipcredit/fica-tip-credit/internal/output"
)

var (
	flagSetHours   int
	flagSetMinWage string
	flagSetFormat  string
	flagSetTheme   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update saved preferences",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().IntVar(&flagSetHours, "set-hours", 0, "Save a default hours per month")
	configCmd.Flags().StringVar(&flagSetMinWage, "set-min-wage", "", "Save a default minimum wage basis (0 is allowed)")
	configCmd.Flags().StringVar(&flagSetFormat, "set-format", "", "Save a default output format")
	configCmd.Flags().StringVar(&flagSetTheme, "set-theme", "", "Save a console theme (flexoki-dark, flexoki-light)")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	flags := cmd.Flags()

	if flags.Changed("set-hours") || flags.Changed("set-min-wage") || flags.Changed("set-format") || flags.Changed("set-theme") {
		if flags.Changed("set-hours") {
			if flagSetHours < 1 {
				return fmt.Errorf("--set-hours must be at least 1")
			}
			prefs.Defaults.HoursPerMonth = flagSetHours
		}
		if flags.Changed("set-min-wage") {
			minWage, err := parseFlagDecimal("set-min-wage", flagSetMinWage)
			if err != nil {
				return err
			}
			if minWage.IsNegative() {
				return fmt.Errorf("--set-min-wage cannot be negative")
			}
			prefs.Defaults.MinWageBasis = minWage
		}
		if flags.Changed("set-format") {
			f, err := output.LookupFormatter(flagSetFormat)
			if err != nil {
				return err
			}
			prefs.Output.Format = f.Name()
		}
		if flags.Changed("set-theme") {
			prefs.Output.Theme = output.ThemeByName(flagSetTheme).Name
		}
		if err := config.SavePreferences(prefs); err != nil {
			return err
		}
		fmt.Fprintln(out, "  Preferences saved.")
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	d := prefs.InputDefaults()
	fmt.Fprintln(out, "  [Defaults]")
	fmt.Fprintf(out, "    Hours per month:    %d\n", d.HoursPerMonth)
	fmt.Fprintf(out, "    Minimum wage basis: %s\n", output.FormatMoney(d.MinWageBasis))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Output]")
	fmt.Fprintf(out, "    Format: %s\n", prefs.Output.Format)
	fmt.Fprintf(out, "    Theme:  %s\n", output.ThemeByName(prefs.Output.Theme).Name)
	return nil
}
