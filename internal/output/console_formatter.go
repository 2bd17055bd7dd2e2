package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/tipcredit/fica-tip-credit/internal/calculation"
	"github.com/tipcredit/fica-tip-credit/internal/domain"
)

// ConsoleFormatter renders a styled, human-readable summary of every scenario.
type ConsoleFormatter struct {
	Theme string
}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

const labelWidth = 34

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	t := ThemeByName(c.Theme)
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(labelWidth)
	valueStyle := lipgloss.NewStyle().Foreground(t.Text)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	var buf bytes.Buffer
	row := func(label, value string) {
		fmt.Fprintf(&buf, "  %s%s\n", labelStyle.Render(label), valueStyle.Render(value))
	}

	fmt.Fprintln(&buf, titleStyle.Render("FICA TIP CREDIT ESTIMATE"))
	fmt.Fprintln(&buf, strings.Repeat("=", 40))

	for i, sc := range report.Scenarios {
		in, r := sc.Input, sc.Result
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, titleStyle.Render(fmt.Sprintf("SCENARIO %d: %s", i+1, sc.Name)))
		fmt.Fprintf(&buf, "  %s\n", labelStyle.UnsetWidth().Render(describeInput(in)))
		fmt.Fprintln(&buf)
		row("Monthly tips per server", FormatMoney(r.TipsMonthly))
		row("Non-creditable tips", FormatMoney(r.NonCreditableTips))
		row("Creditable tips", FormatMoney(r.CreditableTips))
		row("Credit per server (monthly)", FormatMoney(r.MonthlyCreditPerServer))
		row("Credit per server (annual)", FormatMoney(r.AnnualCreditPerServer))
		row("Credit per server (3 years)", FormatMoney(r.Credit3yrPerServer))
		fmt.Fprintf(&buf, "  %s%s\n", labelStyle.Render("Total 3-year credit"), greenStyle.Render(FormatMoney(r.TotalCredit)))
		if r.ServersFor100k > 0 {
			row("Servers needed for "+FormatDecimalCurrency(calculation.CreditTarget, 0), FormatNumber(float64(r.ServersFor100k), 0))
		} else {
			fmt.Fprintf(&buf, "  %s%s\n", labelStyle.Render("Servers needed for "+FormatDecimalCurrency(calculation.CreditTarget, 0)), warnStyle.Render("n/a (no creditable tips)"))
		}
		row("Server income (monthly)", FormatMoney(r.TotalIncomeMonthly))
		row("Server income (annual)", FormatMoney(r.AnnualIncome))
		row("Effective hourly rate", FormatMoney(r.EffectiveHourlyRate))
	}

	if len(report.Scenarios) > 1 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s %s\n", titleStyle.Render("Combined total credit:"), greenStyle.Render(FormatMoney(report.TotalCredit)))
	}

	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = calculation.GenerateAssumptions(calculation.DefaultInputDefaults(), calculation.NewEmployerFICARates2025())
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, labelStyle.UnsetWidth().Render("Assumptions:"))
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "  • %s\n", labelStyle.UnsetWidth().Render(a))
	}
	return buf.Bytes(), nil
}

// describeInput renders the scenario inputs on one line.
func describeInput(in domain.CalculationInput) string {
	return fmt.Sprintf("%s · %s · %d h/month · %s/h cash wage · %s tips · %s min wage basis",
		plural(in.Locations, "location"),
		plural(in.Servers, "server"),
		in.HoursPerMonth,
		FormatMoney(in.CashWagePerHour),
		FormatPercentage(in.TipsPct),
		FormatMoney(in.MinWageBasis),
	)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%s %ss", FormatDecimal(decimal.NewFromInt(int64(n)), 0), noun)
}
