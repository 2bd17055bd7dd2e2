package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/tipcredit/fica-tip-credit/internal/domain"
)

// CSVSummarizer writes one row per scenario, sorted by name.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

var csvHeader = []string{
	"Scenario", "Locations", "Servers", "HoursPerMonth", "CashWagePerHour", "TipsPct", "MinWageBasis",
	"TipsMonthly", "NonCreditableTips", "CreditableTips",
	"MonthlyCreditPerServer", "AnnualCreditPerServer", "Credit3yrPerServer", "TotalCredit", "ServersFor100k",
	"TotalIncomeMonthly", "AnnualIncome", "EffectiveHourlyRate",
}

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioResult(nil), report.Scenarios...)
	sort.SliceStable(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		in, r := sc.Input, sc.Result
		row := []string{
			sc.Name,
			strconv.Itoa(in.Locations),
			strconv.Itoa(in.Servers),
			strconv.Itoa(in.HoursPerMonth),
			in.CashWagePerHour.StringFixed(2),
			in.TipsPct.StringFixed(4),
			in.MinWageBasis.StringFixed(2),
			r.TipsMonthly.StringFixed(2),
			r.NonCreditableTips.StringFixed(2),
			r.CreditableTips.StringFixed(2),
			r.MonthlyCreditPerServer.StringFixed(2),
			r.AnnualCreditPerServer.StringFixed(2),
			r.Credit3yrPerServer.StringFixed(2),
			r.TotalCredit.StringFixed(2),
			strconv.FormatInt(r.ServersFor100k, 10),
			r.TotalIncomeMonthly.StringFixed(2),
			r.AnnualIncome.StringFixed(2),
			r.EffectiveHourlyRate.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
