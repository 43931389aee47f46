// Package money holds the rupiah rounding rules shared by the calculators.
package money

import "github.com/shopspring/decimal"

var thousand = decimal.NewFromInt(1000)

// RoundRupiah rounds an amount half-up to a whole rupiah. IDR has no
// fractional subunit in payroll, so every published amount goes through this.
func RoundRupiah(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// FloorToThousand truncates an amount down to the nearest lower 1,000.
// This is the statutory rounding applied to PKP before the bracket walk.
func FloorToThousand(d decimal.Decimal) decimal.Decimal {
	return d.Div(thousand).Floor().Mul(thousand)
}

// Percent applies rate (expressed as a percentage, e.g. 5 for 5%) to base.
func Percent(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(decimal.NewFromInt(100))
}
