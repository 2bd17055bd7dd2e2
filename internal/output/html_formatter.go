package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/tipcredit/fica-tip-credit/internal/calculation"
	"github.com/tipcredit/fica-tip-credit/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatMoney,
	"pct":  FormatPercentage,
	"add":  func(i, j int) int { return i + j },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = calculation.GenerateAssumptions(calculation.DefaultInputDefaults(), calculation.NewEmployerFICARates2025())
	}

	data := struct {
		*domain.Report
		Assumptions []string
		Target      string
	}{report, assumptions, FormatDecimalCurrency(calculation.CreditTarget, 0)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
