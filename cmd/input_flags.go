package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/tipcredit/fica-tip-credit/internal/domain"
)

// inputFlags binds the calculator inputs to command-line flags.
type inputFlags struct {
	file        string
	locations   int
	servers     int
	hours       int
	cashWage    string
	tipsPercent string
	minWage     string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "file", "", "Scenario file (YAML or JSON); other input flags are ignored")
	cmd.Flags().IntVarP(&f.locations, "locations", "l", 0, "Number of locations")
	cmd.Flags().IntVarP(&f.servers, "servers", "s", 0, "Servers per location")
	cmd.Flags().IntVar(&f.hours, "hours", 0, "Hours per server per month (default from preferences, 173)")
	cmd.Flags().StringVar(&f.cashWage, "cash-wage", "", "Cash wage per hour in dollars")
	cmd.Flags().StringVar(&f.tipsPercent, "tips-percent", "", "Tips as a percentage (0-100) of total server income")
	cmd.Flags().StringVar(&f.minWage, "min-wage", "", "Minimum wage basis in dollars (default from preferences, 5.15)")
}

// partial builds a PartialInput from the flags the user actually set.
func (f *inputFlags) partial(cmd *cobra.Command) (domain.PartialInput, error) {
	var p domain.PartialInput
	changed := cmd.Flags().Changed

	if changed("locations") {
		p.Locations = &f.locations
	}
	if changed("servers") {
		p.Servers = &f.servers
	}
	if changed("hours") {
		p.HoursPerMonth = &f.hours
	}
	if changed("cash-wage") {
		d, err := parseFlagDecimal("cash-wage", f.cashWage)
		if err != nil {
			return p, err
		}
		p.CashWagePerHour = &d
	}
	if changed("tips-percent") {
		d, err := parseFlagDecimal("tips-percent", f.tipsPercent)
		if err != nil {
			return p, err
		}
		frac := domain.PercentToFraction(d)
		p.TipsPct = &frac
	}
	if changed("min-wage") {
		d, err := parseFlagDecimal("min-wage", f.minWage)
		if err != nil {
			return p, err
		}
		p.MinWageBasis = &d
	}
	return p, nil
}

func parseFlagDecimal(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %q is not a number", name, value)
	}
	return d, nil
}
