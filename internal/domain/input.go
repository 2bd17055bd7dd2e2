package domain

import (
	"github.com/shopspring/decimal"
)

// CalculationInput is the fully populated record the credit calculator works from.
type CalculationInput struct {
	Locations       int             `yaml:"locations" json:"locations"`
	Servers         int             `yaml:"servers" json:"servers"`
	HoursPerMonth   int             `yaml:"hours_per_month" json:"hours_per_month"`
	CashWagePerHour decimal.Decimal `yaml:"cash_wage_per_hour" json:"cash_wage_per_hour"`
	TipsPct         decimal.Decimal `yaml:"tips_pct" json:"tips_pct"`             // Fraction in [0, 1]
	MinWageBasis    decimal.Decimal `yaml:"min_wage_basis" json:"min_wage_basis"` // Federal minimum wage used as the IRS floor
}

// PartialInput mirrors CalculationInput with every field optional.
// A nil field means the value was never supplied (blank form field, absent YAML key).
type PartialInput struct {
	Locations       *int             `yaml:"locations,omitempty" json:"locations,omitempty"`
	Servers         *int             `yaml:"servers,omitempty" json:"servers,omitempty"`
	HoursPerMonth   *int             `yaml:"hours_per_month,omitempty" json:"hours_per_month,omitempty"`
	CashWagePerHour *decimal.Decimal `yaml:"cash_wage_per_hour,omitempty" json:"cash_wage_per_hour,omitempty"`
	TipsPct         *decimal.Decimal `yaml:"tips_pct,omitempty" json:"tips_pct,omitempty"`
	MinWageBasis    *decimal.Decimal `yaml:"min_wage_basis,omitempty" json:"min_wage_basis,omitempty"`
}

// InputDefaults holds the values substituted for missing hours and minimum wage.
// Both fields are always applied; a zero minimum wage basis is a real value.
type InputDefaults struct {
	HoursPerMonth int             `yaml:"hours_per_month" json:"hours_per_month"`
	MinWageBasis  decimal.Decimal `yaml:"min_wage_basis" json:"min_wage_basis"`
}

// WithDefaults returns a copy of p where missing hours and minimum wage are
// taken from d. Counts and wages that are present are never overwritten.
func (p PartialInput) WithDefaults(d InputDefaults) PartialInput {
	out := p
	if out.HoursPerMonth == nil {
		h := d.HoursPerMonth
		out.HoursPerMonth = &h
	}
	if out.MinWageBasis == nil {
		m := d.MinWageBasis
		out.MinWageBasis = &m
	}
	return out
}

// ScenarioDefaults is the optional defaults block of a scenario file.
// A nil field was not written; a present zero overrides the base value.
type ScenarioDefaults struct {
	HoursPerMonth *int             `yaml:"hours_per_month,omitempty" json:"hours_per_month,omitempty"`
	MinWageBasis  *decimal.Decimal `yaml:"min_wage_basis,omitempty" json:"min_wage_basis,omitempty"`
}

// NewScenarioDefaults captures a full set of defaults as a file defaults block.
func NewScenarioDefaults(d InputDefaults) *ScenarioDefaults {
	h, m := d.HoursPerMonth, d.MinWageBasis
	return &ScenarioDefaults{HoursPerMonth: &h, MinWageBasis: &m}
}

// Over layers the fields present in d on top of base. A nil receiver returns base.
func (d *ScenarioDefaults) Over(base InputDefaults) InputDefaults {
	if d == nil {
		return base
	}
	if d.HoursPerMonth != nil {
		base.HoursPerMonth = *d.HoursPerMonth
	}
	if d.MinWageBasis != nil {
		base.MinWageBasis = *d.MinWageBasis
	}
	return base
}

// Resolve applies defaults and flattens the record into a CalculationInput.
// Missing counts resolve to zero so the calculator rejects them; a missing
// cash wage or tip share resolves to zero like an empty form field.
func (p PartialInput) Resolve(d InputDefaults) CalculationInput {
	p = p.WithDefaults(d)
	in := CalculationInput{
		CashWagePerHour: decimal.Zero,
		TipsPct:         decimal.Zero,
		MinWageBasis:    decimal.Zero,
	}
	if p.Locations != nil {
		in.Locations = *p.Locations
	}
	if p.Servers != nil {
		in.Servers = *p.Servers
	}
	if p.HoursPerMonth != nil {
		in.HoursPerMonth = *p.HoursPerMonth
	}
	if p.CashWagePerHour != nil {
		in.CashWagePerHour = *p.CashWagePerHour
	}
	if p.TipsPct != nil {
		in.TipsPct = *p.TipsPct
	}
	if p.MinWageBasis != nil {
		in.MinWageBasis = *p.MinWageBasis
	}
	return in
}

// Partial lifts a complete input back into a PartialInput with every field set.
func (in CalculationInput) Partial() PartialInput {
	locations, servers, hours := in.Locations, in.Servers, in.HoursPerMonth
	wage, tips, minWage := in.CashWagePerHour, in.TipsPct, in.MinWageBasis
	return PartialInput{
		Locations:       &locations,
		Servers:         &servers,
		HoursPerMonth:   &hours,
		CashWagePerHour: &wage,
		TipsPct:         &tips,
		MinWageBasis:    &minWage,
	}
}

// PercentToFraction converts a display percentage (0-100) into the 0-1 fraction
// the calculator expects.
func PercentToFraction(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(decimal.NewFromInt(100))
}
