package domain

import "github.com/shopspring/decimal"

// CalculationResult holds every figure derived from a CalculationInput.
// Values are unrounded; rounding is a display concern.
type CalculationResult struct {
	// Intermediate values
	CashWageMonthly decimal.Decimal `yaml:"cash_wage_monthly" json:"cash_wage_monthly"`
	BaselineMonthly decimal.Decimal `yaml:"baseline_monthly" json:"baseline_monthly"`
	CreditRate      decimal.Decimal `yaml:"credit_rate" json:"credit_rate"`

	// Tips
	TipsMonthly       decimal.Decimal `yaml:"tips_monthly" json:"tips_monthly"`
	NonCreditableTips decimal.Decimal `yaml:"non_creditable_tips" json:"non_creditable_tips"`
	CreditableTips    decimal.Decimal `yaml:"creditable_tips" json:"creditable_tips"`

	// Credit
	MonthlyCreditPerServer decimal.Decimal `yaml:"monthly_credit_per_server" json:"monthly_credit_per_server"`
	AnnualCreditPerServer  decimal.Decimal `yaml:"annual_credit_per_server" json:"annual_credit_per_server"`
	Credit3yrPerServer     decimal.Decimal `yaml:"credit_3yr_per_server" json:"credit_3yr_per_server"`
	TotalCredit            decimal.Decimal `yaml:"total_credit" json:"total_credit"`
	ServersFor100k         int64           `yaml:"servers_for_100k" json:"servers_for_100k"`

	// Server income
	TotalIncomeMonthly  decimal.Decimal `yaml:"total_income_monthly" json:"total_income_monthly"`
	AnnualIncome        decimal.Decimal `yaml:"annual_income" json:"annual_income"`
	EffectiveHourlyRate decimal.Decimal `yaml:"effective_hourly_rate" json:"effective_hourly_rate"`
}

// ScenarioResult pairs a named scenario's resolved input with its result.
type ScenarioResult struct {
	Name   string            `json:"name"`
	Input  CalculationInput  `json:"input"`
	Result CalculationResult `json:"result"`
}

// Report is the outcome of running every scenario in a configuration.
type Report struct {
	Scenarios   []ScenarioResult `json:"scenarios"`
	TotalCredit decimal.Decimal  `json:"total_credit"` // Sum of TotalCredit across scenarios
	Assumptions []string         `json:"assumptions,omitempty"`
}
