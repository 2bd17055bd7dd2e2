// Package form collects calculator inputs interactively in the terminal.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/tipcredit/fica-tip-credit/internal/domain"
)

// Fields holds the raw text of each form field. TipsPercent is entered as 0-100.
type Fields struct {
	Locations       string
	Servers         string
	HoursPerMonth   string
	CashWagePerHour string
	TipsPercent     string
	MinWageBasis    string
}

// NewFields pre-fills hours and minimum wage from defaults.
func NewFields(d domain.InputDefaults) Fields {
	f := Fields{MinWageBasis: d.MinWageBasis.StringFixed(2)}
	if d.HoursPerMonth > 0 {
		f.HoursPerMonth = strconv.Itoa(d.HoursPerMonth)
	}
	return f
}

// ParseFields converts raw field text into a PartialInput. Blank fields stay nil;
// the tip percentage is converted to a fraction. Every unparsable field is reported.
func ParseFields(f Fields) (domain.PartialInput, error) {
	var p domain.PartialInput
	var errs []string

	collect := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	var err error
	p.Locations, err = parseCount("locations", f.Locations)
	collect(err)
	p.Servers, err = parseCount("servers", f.Servers)
	collect(err)
	p.HoursPerMonth, err = parseCount("hours per month", f.HoursPerMonth)
	collect(err)
	p.CashWagePerHour, err = parseAmount("cash wage per hour", f.CashWagePerHour)
	collect(err)
	pct, err := parseAmount("tips percentage", f.TipsPercent)
	collect(err)
	if pct != nil {
		frac := domain.PercentToFraction(*pct)
		p.TipsPct = &frac
	}
	p.MinWageBasis, err = parseAmount("minimum wage basis", f.MinWageBasis)
	collect(err)

	if len(errs) > 0 {
		return p, &domain.ValidationError{Errors: errs}
	}
	return p, nil
}

func parseCount(name, raw string) (*int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return nil, fmt.Errorf("%s must be a whole number", name)
	}
	return &n, nil
}

func parseAmount(name, raw string) (*decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &d, nil
}

func countValidator(name string) func(string) error {
	return func(s string) error {
		n, err := parseCount(name, s)
		if err != nil {
			return err
		}
		if n == nil || *n < 1 {
			return fmt.Errorf("%s must be at least 1", name)
		}
		return nil
	}
}

func amountValidator(name string, max *decimal.Decimal) func(string) error {
	return func(s string) error {
		d, err := parseAmount(name, s)
		if err != nil || d == nil {
			return err
		}
		if d.IsNegative() {
			return fmt.Errorf("%s cannot be negative", name)
		}
		if max != nil && d.GreaterThan(*max) {
			return fmt.Errorf("%s cannot exceed %s", name, max.String())
		}
		return nil
	}
}

// Collect runs the interactive form and returns the parsed input.
// huh.ErrUserAborted is returned unchanged when the user cancels.
func Collect(d domain.InputDefaults, accessible bool) (domain.PartialInput, error) {
	f := NewFields(d)
	hundred := decimal.NewFromInt(100)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Locations").Description("Restaurants participating").
				Value(&f.Locations).Validate(countValidator("locations")),
			huh.NewInput().Title("Servers per location").Description("Tipped employees at each location").
				Value(&f.Servers).Validate(countValidator("servers")),
			huh.NewInput().Title("Hours per month").Description("Per server; 173 is full time").
				Value(&f.HoursPerMonth).Validate(countValidator("hours per month")),
		),
		huh.NewGroup(
			huh.NewInput().Title("Cash wage per hour ($)").Placeholder("2.13").
				Value(&f.CashWagePerHour).Validate(amountValidator("cash wage per hour", nil)),
			huh.NewInput().Title("Tips as % of total income").Placeholder("60").
				Value(&f.TipsPercent).Validate(amountValidator("tips percentage", &hundred)),
			huh.NewInput().Title("Minimum wage basis ($)").Description("Federal rate the credit is frozen at").
				Value(&f.MinWageBasis).Validate(amountValidator("minimum wage basis", nil)),
		),
	).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		return domain.PartialInput{}, err
	}
	return ParseFields(f)
}
