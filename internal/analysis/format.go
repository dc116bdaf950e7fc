package analysis

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	billion  = decimal.New(1, 9)
	million  = decimal.New(1, 6)
	thousand = decimal.New(1, 3)
)

// FormatCurrency renders a euro amount. With short set, large amounts use
// Md€ (billions), M€ (millions) or k€ (thousands); otherwise the amount is
// rounded to whole euros with thousands separators, e.g. "-1,234,567 €".
func FormatCurrency(amount float64, short bool) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "n/a"
	}
	d := decimal.NewFromFloat(amount)
	if short {
		abs := d.Abs()
		switch {
		case abs.GreaterThanOrEqual(billion):
			return d.Div(billion).StringFixed(1) + "Md€"
		case abs.GreaterThanOrEqual(million):
			return d.Div(million).StringFixed(1) + "M€"
		case abs.GreaterThanOrEqual(thousand):
			return d.Div(thousand).StringFixed(0) + "k€"
		}
	}
	return GroupThousands(d.StringFixed(0)) + " €"
}

// GroupThousands inserts "," every three digits of an integer string.
func GroupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}
