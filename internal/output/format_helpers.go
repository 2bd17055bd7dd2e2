package output

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Display strings for values that have no finite representation.
const (
	notANumber = "NaN"
	infinity   = "∞"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders value as en-US dollars with exactly decimals fraction digits,
// e.g. 57173.04 -> "$57,173.04" and -1234.5 -> "-$1,234.50".
// NaN renders as "$NaN" and infinities as "$∞" / "-$∞".
func FormatCurrency(value float64, decimals int) string {
	switch {
	case math.IsNaN(value):
		return "$" + notANumber
	case math.IsInf(value, 1):
		return "$" + infinity
	case math.IsInf(value, -1):
		return "-$" + infinity
	}
	return FormatDecimalCurrency(decimal.NewFromFloat(value), decimals)
}

// FormatNumber renders value with en-US grouping and exactly decimals fraction digits,
// e.g. 1234567.891 -> "1,234,568" at 0 decimals.
// NaN renders as "NaN" and infinities as "∞" / "-∞".
func FormatNumber(value float64, decimals int) string {
	switch {
	case math.IsNaN(value):
		return notANumber
	case math.IsInf(value, 1):
		return infinity
	case math.IsInf(value, -1):
		return "-" + infinity
	}
	return FormatDecimal(decimal.NewFromFloat(value), decimals)
}

// FormatDecimalCurrency is FormatCurrency for exact decimal amounts.
func FormatDecimalCurrency(amount decimal.Decimal, decimals int) string {
	sign, digits := groupDigits(amount, decimals)
	return sign + "$" + digits
}

// FormatDecimal is FormatNumber for exact decimal amounts.
func FormatDecimal(amount decimal.Decimal, decimals int) string {
	sign, digits := groupDigits(amount, decimals)
	return sign + digits
}

// FormatMoney formats a decimal as USD currency with 2 decimals.
func FormatMoney(amount decimal.Decimal) string { return FormatDecimalCurrency(amount, 2) }

// FormatPercentage formats a 0-1 fraction as a percentage with 2 decimals.
func FormatPercentage(fraction decimal.Decimal) string {
	return FormatDecimal(fraction.Mul(decimal.NewFromInt(100)), 2) + "%"
}

// groupDigits rounds half away from zero and returns the sign separately so
// the currency symbol can sit between sign and digits. The digits come from the
// decimal itself, never a float, so large amounts stay exact.
func groupDigits(amount decimal.Decimal, decimals int) (string, string) {
	if decimals < 0 {
		decimals = 0
	}
	rounded := amount.Round(int32(decimals))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	whole, frac, _ := strings.Cut(rounded.StringFixed(int32(decimals)), ".")
	grouped := groupInteger(whole)
	if frac != "" {
		grouped += "." + frac
	}
	return sign, grouped
}

// groupInteger adds en-US thousands separators to a string of digits.
func groupInteger(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return usPrinter.Sprint(number.Decimal(n))
	}
	// Beyond int64 the locale printer only takes floats.
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
