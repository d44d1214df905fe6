package utils

import "github.com/shopspring/decimal"

// ComputeRentalFee returns dailyRate * days rounded to cents. Callers must
// reject non-positive day counts before pricing.
func ComputeRentalFee(dailyRate float64, days int) float64 {
	if days <= 0 {
		return 0
	}
	return roundMoney(decimal.NewFromFloat(dailyRate).Mul(decimal.NewFromInt(int64(days))))
}
