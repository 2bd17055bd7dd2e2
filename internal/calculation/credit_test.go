package calculation

import (
	"bytes"
	"math"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tipcredit/fica-tip-credit/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: want %s, got %s", field, want, got.String())
}

func exampleInput() domain.CalculationInput {
	return domain.CalculationInput{
		Locations:       1,
		Servers:         10,
		HoursPerMonth:   173,
		CashWagePerHour: dec("8.00"),
		TipsPct:         dec("0.60"),
		MinWageBasis:    dec("5.15"),
	}
}

// TestCalculateDocumentedExample walks the full-time server example from the calculator page.
func TestCalculateDocumentedExample(t *testing.T) {
	result, err := Calculate(exampleInput())
	require.NoError(t, err)

	assertDecimal(t, "1384", result.CashWageMonthly, "CashWageMonthly")
	assertDecimal(t, "3460", result.TotalIncomeMonthly, "TotalIncomeMonthly")
	assertDecimal(t, "2076", result.TipsMonthly, "TipsMonthly")
	assertDecimal(t, "890.95", result.BaselineMonthly, "BaselineMonthly")
	assertDecimal(t, "0", result.NonCreditableTips, "NonCreditableTips")
	assertDecimal(t, "2076", result.CreditableTips, "CreditableTips")
	assertDecimal(t, "0.0765", result.CreditRate, "CreditRate")
	assertDecimal(t, "158.814", result.MonthlyCreditPerServer, "MonthlyCreditPerServer")
	assertDecimal(t, "1905.768", result.AnnualCreditPerServer, "AnnualCreditPerServer")
	assertDecimal(t, "5717.304", result.Credit3yrPerServer, "Credit3yrPerServer")
	assertDecimal(t, "57173.04", result.TotalCredit, "TotalCredit")
	assertDecimal(t, "41520", result.AnnualIncome, "AnnualIncome")
	assertDecimal(t, "20", result.EffectiveHourlyRate, "EffectiveHourlyRate")
	assert.Equal(t, int64(18), result.ServersFor100k)
}

func TestCalculateScenarios(t *testing.T) {
	tests := []struct {
		name           string
		input          domain.CalculationInput
		nonCreditable  string
		creditable     string
		credit3yr      string
		totalCredit    string
		serversFor100k int64
		description    string
	}{
		{
			name: "Tipped minimum cash wage",
			input: domain.CalculationInput{
				Locations: 2, Servers: 10, HoursPerMonth: 173,
				CashWagePerHour: dec("2.13"), TipsPct: dec("0.6"), MinWageBasis: dec("5.15"),
			},
			nonCreditable:  "522.46", // 890.95 - 368.49
			creditable:     "30.275", // 552.735 - 522.46
			credit3yr:      "83.37735",
			totalCredit:    "1667.547",
			serversFor100k: 1200,
			description:    "Most tips go to reaching minimum wage",
		},
		{
			name: "Tips below the minimum wage gap",
			input: domain.CalculationInput{
				Locations: 1, Servers: 4, HoursPerMonth: 173,
				CashWagePerHour: dec("2.13"), TipsPct: dec("0.2"), MinWageBasis: dec("5.15"),
			},
			nonCreditable:  "522.46",
			creditable:     "0",
			credit3yr:      "0",
			totalCredit:    "0",
			serversFor100k: 0,
			description:    "Creditable tips clamp at zero",
		},
		{
			name: "No tips",
			input: domain.CalculationInput{
				Locations: 3, Servers: 12, HoursPerMonth: 160,
				CashWagePerHour: dec("15"), TipsPct: dec("0"), MinWageBasis: dec("5.15"),
			},
			nonCreditable:  "0",
			creditable:     "0",
			credit3yr:      "0",
			totalCredit:    "0",
			serversFor100k: 0,
			description:    "No tips, no credit",
		},
		{
			name: "Zero cash wage",
			input: domain.CalculationInput{
				Locations: 1, Servers: 1, HoursPerMonth: 100,
				CashWagePerHour: dec("0"), TipsPct: dec("0.5"), MinWageBasis: dec("5.15"),
			},
			nonCreditable:  "515",
			creditable:     "0",
			credit3yr:      "0",
			totalCredit:    "0",
			serversFor100k: 0,
			description:    "Zero wage means zero total income regardless of tip share",
		},
		{
			name: "Vanishing credit saturates servers needed",
			input: domain.CalculationInput{
				Locations: 1, Servers: 1, HoursPerMonth: 1,
				CashWagePerHour: dec("0.0000000000000001"), TipsPct: dec("0.5"), MinWageBasis: dec("0"),
			},
			nonCreditable:  "0",
			creditable:     "0.0000000000000001",
			credit3yr:      "0.0000000000000002754",
			totalCredit:    "0.0000000000000002754",
			serversFor100k: math.MaxInt64,
			description:    "100000 / credit exceeds int64 and must not wrap negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Calculate(tt.input)
			require.NoError(t, err, tt.description)
			assertDecimal(t, tt.nonCreditable, result.NonCreditableTips, "NonCreditableTips")
			assertDecimal(t, tt.creditable, result.CreditableTips, "CreditableTips")
			assertDecimal(t, tt.credit3yr, result.Credit3yrPerServer, "Credit3yrPerServer")
			assertDecimal(t, tt.totalCredit, result.TotalCredit, "TotalCredit")
			assert.Equal(t, tt.serversFor100k, result.ServersFor100k, tt.description)
		})
	}
}

func TestCalculateAllTips(t *testing.T) {
	in := exampleInput()
	in.TipsPct = dec("1")

	result, err := Calculate(in)
	require.NoError(t, err)
	assert.True(t, result.TotalIncomeMonthly.Equal(result.CashWageMonthly))
	assert.True(t, result.TipsMonthly.IsZero())
	assert.True(t, result.Credit3yrPerServer.IsZero())
	assert.Equal(t, int64(0), result.ServersFor100k)
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CalculationInput)
		want   []string
	}{
		{"zero locations", func(in *domain.CalculationInput) { in.Locations = 0 }, []string{msgLocations}},
		{"negative servers", func(in *domain.CalculationInput) { in.Servers = -2 }, []string{msgServers}},
		{"zero hours", func(in *domain.CalculationInput) { in.HoursPerMonth = 0 }, []string{msgHours}},
		{"tips above one", func(in *domain.CalculationInput) { in.TipsPct = dec("1.01") }, []string{msgTipsPct}},
		{"negative tips", func(in *domain.CalculationInput) { in.TipsPct = dec("-0.1") }, []string{msgTipsPct}},
		{"everything wrong", func(in *domain.CalculationInput) {
			in.Locations, in.Servers, in.HoursPerMonth = 0, 0, 0
			in.TipsPct = dec("2")
		}, []string{msgLocations, msgServers, msgHours, msgTipsPct}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := exampleInput()
			tt.mutate(&in)
			result, err := Calculate(in)
			require.Error(t, err)
			assert.Nil(t, result)

			ve, ok := domain.AsValidationError(err)
			require.True(t, ok, "expected *domain.ValidationError, got %T", err)
			assert.Equal(t, tt.want, ve.Errors)
		})
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	in := exampleInput()
	first, err := Calculate(in)
	require.NoError(t, err)
	second, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Concurrent callers never interact.
	var wg sync.WaitGroup
	results := make([]*domain.CalculationResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := Calculate(in)
			if err == nil {
				results[i] = r
			}
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		require.NotNil(t, r)
		assert.True(t, r.TotalCredit.Equal(first.TotalCredit))
	}
}

func TestCalculateInvariants(t *testing.T) {
	wages := []string{"0", "2.13", "5.15", "7.25", "12.50"}
	tips := []string{"0", "0.15", "0.5", "0.85", "1"}
	minWages := []string{"0", "5.15", "7.25"}

	for _, w := range wages {
		for _, p := range tips {
			for _, m := range minWages {
				in := domain.CalculationInput{
					Locations: 3, Servers: 7, HoursPerMonth: 150,
					CashWagePerHour: dec(w), TipsPct: dec(p), MinWageBasis: dec(m),
				}
				r, err := Calculate(in)
				require.NoError(t, err)

				assert.False(t, r.CreditableTips.IsNegative(), "creditable tips negative for %+v", in)
				assert.False(t, r.NonCreditableTips.IsNegative(), "non-creditable tips negative for %+v", in)

				want := r.Credit3yrPerServer.Mul(decimal.NewFromInt(7)).Mul(decimal.NewFromInt(3))
				assert.True(t, want.Equal(r.TotalCredit), "total credit mismatch for %+v", in)

				if in.TipsPct.IsZero() {
					assert.True(t, r.TipsMonthly.IsZero())
					assert.True(t, r.CreditableTips.IsZero())
				}
				if in.CashWagePerHour.GreaterThanOrEqual(in.MinWageBasis) {
					assert.True(t, r.NonCreditableTips.IsZero())
				}
				if r.Credit3yrPerServer.IsZero() {
					assert.Equal(t, int64(0), r.ServersFor100k)
				}
			}
		}
	}
}

func TestCalculateLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	calc := NewCreditCalculator()
	calc.SetLogger(WriterLogger{W: &buf, Debug: true})

	_, err := calc.Calculate(exampleInput())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "creditable=2076.0000")

	calc.SetLogger(nil)
	assert.IsType(t, NopLogger{}, calc.Logger)
}

func TestEmployerFICARates(t *testing.T) {
	rates := NewEmployerFICARates2025()
	assertDecimal(t, "0.0765", rates.CreditRate(), "CreditRate")
}
