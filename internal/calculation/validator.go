package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/tipcredit/fica-tip-credit/internal/domain"
)

const (
	msgLocations = "locations must be at least 1"
	msgServers   = "servers must be at least 1"
	msgHours     = "hours per month must be at least 1"
	msgCashWage  = "cash wage per hour cannot be negative"
	msgTipsPct   = "tips percentage must be between 0 and 1"
	msgMinWage   = "minimum wage basis cannot be negative"
)

// Validate checks every field of a possibly incomplete input and collects
// all violations in field order. The input is not modified.
func Validate(in domain.PartialInput) domain.ValidationResult {
	errs := []string{}

	if !positiveCount(in.Locations) {
		errs = append(errs, msgLocations)
	}
	if !positiveCount(in.Servers) {
		errs = append(errs, msgServers)
	}
	if !positiveCount(in.HoursPerMonth) {
		errs = append(errs, msgHours)
	}
	if in.CashWagePerHour != nil && in.CashWagePerHour.IsNegative() {
		errs = append(errs, msgCashWage)
	}
	if in.TipsPct != nil && !fractionInRange(*in.TipsPct) {
		errs = append(errs, msgTipsPct)
	}
	if in.MinWageBasis != nil && in.MinWageBasis.IsNegative() {
		errs = append(errs, msgMinWage)
	}

	return domain.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

func positiveCount(n *int) bool {
	return n != nil && *n > 0
}

func fractionInRange(f decimal.Decimal) bool {
	return !f.IsNegative() && f.LessThanOrEqual(decimal.NewFromInt(1))
}
