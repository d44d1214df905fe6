package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TaxRate is applied to every invoice total.
var TaxRate = decimal.RequireFromString("0.18")

// roundMoney keeps two decimal places, half away from zero.
func roundMoney(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// ComputeTax returns amount * TaxRate rounded to cents.
func ComputeTax(amount float64) float64 {
	return roundMoney(decimal.NewFromFloat(amount).Mul(TaxRate))
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatRupees renders an amount with thousand separators, e.g. "Rs. 7,500.00".
func FormatRupees(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	fixed := FormatMoney(amount)
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + "Rs. " + formatThousand(whole) + "." + frac
}

func formatThousand(digits string) string {
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
