package calculation

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/tipcredit/fica-tip-credit/internal/domain"
	money "github.com/tipcredit/fica-tip-credit/pkg/decimal"
)

// CREDIT CALCULATION ASSUMPTIONS:
//
// 1. Credit rate is the employer share of FICA: 6.2% Social Security + 1.45% Medicare.
//    - The Social Security wage base cap is NOT applied (simplification kept on purpose)
//    - Additional Medicare tax is employee-only and never part of the credit
//
// 2. Tips needed to bring the cash wage up to the minimum wage basis are not creditable.
//
// 3. Projections are flat: 12 identical months per year, 3 identical years.

const (
	// MonthsPerYear converts monthly figures to annual ones.
	MonthsPerYear = 12
	// CreditYears is the look-back window the estimate is quoted over.
	CreditYears = 3
	// DefaultHoursPerMonth is a full-time month (40h x 52w / 12).
	DefaultHoursPerMonth = 173
)

var (
	// DefaultMinWageBasis is the 2007 federal minimum wage the credit is frozen at.
	DefaultMinWageBasis = decimal.RequireFromString("5.15")
	// CreditTarget is the headline figure used for servers-needed estimates.
	CreditTarget = decimal.NewFromInt(100000)

	maxServers = decimal.NewFromInt(math.MaxInt64)
)

// EmployerFICARates holds the employer-side payroll tax rates the credit reimburses.
type EmployerFICARates struct {
	SSRate       decimal.Decimal
	MedicareRate decimal.Decimal
}

// NewEmployerFICARates2025 returns the statutory employer rates.
func NewEmployerFICARates2025() EmployerFICARates {
	return EmployerFICARates{
		SSRate:       decimal.NewFromFloat(0.062),
		MedicareRate: decimal.NewFromFloat(0.0145),
	}
}

// CreditRate is the combined rate applied to creditable tips.
func (r EmployerFICARates) CreditRate() decimal.Decimal {
	return r.SSRate.Add(r.MedicareRate)
}

// DefaultInputDefaults returns the built-in hours and minimum wage substitutions.
func DefaultInputDefaults() domain.InputDefaults {
	return domain.InputDefaults{
		HoursPerMonth: DefaultHoursPerMonth,
		MinWageBasis:  DefaultMinWageBasis,
	}
}

// CreditCalculator computes FICA tip credit estimates.
type CreditCalculator struct {
	Rates  EmployerFICARates
	Logger Logger
}

// NewCreditCalculator creates a calculator using the statutory rates and a no-op logger.
func NewCreditCalculator() *CreditCalculator {
	return &CreditCalculator{
		Rates:  NewEmployerFICARates2025(),
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (cc *CreditCalculator) SetLogger(l Logger) {
	if l == nil {
		cc.Logger = NopLogger{}
		return
	}
	cc.Logger = l
}

var defaultCalculator = NewCreditCalculator()

// Calculate computes the credit estimate with the default calculator.
func Calculate(in domain.CalculationInput) (*domain.CalculationResult, error) {
	return defaultCalculator.Calculate(in)
}

// Calculate computes the credit estimate for a single input.
// Inputs that would make the figures meaningless are rejected with a
// *domain.ValidationError listing every violation, even when the caller
// already validated.
func (cc *CreditCalculator) Calculate(in domain.CalculationInput) (*domain.CalculationResult, error) {
	if err := checkCalculable(in); err != nil {
		return nil, err
	}

	cashWageMonthly := money.NewMoneyFromDecimal(in.CashWagePerHour).Times(in.HoursPerMonth)

	// 100% tips would divide by zero; fall back to the cash wage alone.
	totalIncomeMonthly := cashWageMonthly
	if !in.TipsPct.Equal(decimal.NewFromInt(1)) {
		totalIncomeMonthly = cashWageMonthly.Div(decimal.NewFromInt(1).Sub(in.TipsPct))
	}
	tipsMonthly := totalIncomeMonthly.Sub(cashWageMonthly)

	baselineMonthly := money.NewMoneyFromDecimal(in.MinWageBasis).Times(in.HoursPerMonth)
	nonCreditableTips := baselineMonthly.Sub(cashWageMonthly).NonNegative()
	creditableTips := tipsMonthly.Sub(nonCreditableTips).NonNegative()

	rate := cc.Rates.CreditRate()
	monthlyCredit := creditableTips.ApplyRate(rate)
	annualCredit := monthlyCredit.Annual()
	credit3yr := annualCredit.Times(CreditYears)
	totalCredit := credit3yr.Times(in.Servers).Times(in.Locations)

	serversFor100k := serversNeeded(credit3yr.Decimal)

	result := &domain.CalculationResult{
		CashWageMonthly:        cashWageMonthly.Decimal,
		BaselineMonthly:        baselineMonthly.Decimal,
		CreditRate:             rate,
		TipsMonthly:            tipsMonthly.Decimal,
		NonCreditableTips:      nonCreditableTips.Decimal,
		CreditableTips:         creditableTips.Decimal,
		MonthlyCreditPerServer: monthlyCredit.Decimal,
		AnnualCreditPerServer:  annualCredit.Decimal,
		Credit3yrPerServer:     credit3yr.Decimal,
		TotalCredit:            totalCredit.Decimal,
		ServersFor100k:         serversFor100k,
		TotalIncomeMonthly:     totalIncomeMonthly.Decimal,
		AnnualIncome:           totalIncomeMonthly.Annual().Decimal,
		EffectiveHourlyRate:    totalIncomeMonthly.Per(in.HoursPerMonth).Decimal,
	}

	cc.Logger.Debugf("cash wage monthly=%s baseline=%s total income=%s",
		cashWageMonthly.StringFixed(4), baselineMonthly.StringFixed(4), totalIncomeMonthly.StringFixed(4))
	cc.Logger.Debugf("tips=%s non-creditable=%s creditable=%s rate=%s",
		tipsMonthly.StringFixed(4), nonCreditableTips.StringFixed(4), creditableTips.StringFixed(4), rate.String())
	cc.Logger.Debugf("credit per server monthly=%s annual=%s 3yr=%s total=%s servers-for-target=%d",
		monthlyCredit.StringFixed(4), annualCredit.StringFixed(4), credit3yr.StringFixed(4), totalCredit.StringFixed(4), serversFor100k)

	return result, nil
}

// serversNeeded returns ceil(CreditTarget / credit3yr), 0 when there is no
// credit, and saturates at math.MaxInt64 for vanishingly small credits.
func serversNeeded(credit3yr decimal.Decimal) int64 {
	if !credit3yr.IsPositive() {
		return 0
	}
	n := CreditTarget.Div(credit3yr).Ceil()
	if n.GreaterThan(maxServers) {
		return math.MaxInt64
	}
	return n.IntPart()
}

// checkCalculable re-applies the range rules the arithmetic depends on.
func checkCalculable(in domain.CalculationInput) error {
	var errs []string
	if in.Locations < 1 {
		errs = append(errs, msgLocations)
	}
	if in.Servers < 1 {
		errs = append(errs, msgServers)
	}
	if in.HoursPerMonth < 1 {
		errs = append(errs, msgHours)
	}
	if !fractionInRange(in.TipsPct) {
		errs = append(errs, msgTipsPct)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
