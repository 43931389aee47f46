package pph21

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/dannyaudian/payroll-indonesia-go/rates"
)

var logger = slog.Default()

// SetLogger overrides the package logger.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// Config carries the calculation parameters that are not rate-table data:
// the Biaya Jabatan rate and caps, and the per-category fallback TER rates
// used when no bracket matches.
type Config struct {
	BiayaJabatanRatePercent decimal.Decimal
	BiayaJabatanCapMonthly  decimal.Decimal
	BiayaJabatanCapAnnual   decimal.Decimal
	TERFallbackRates        map[rates.TERCategory]decimal.Decimal
}

// DefaultConfig returns the statutory parameters: Biaya Jabatan 5% capped
// at 500,000/month (6,000,000/year) and TER fallbacks of 5/10/15 percent.
func DefaultConfig() Config {
	return Config{
		BiayaJabatanRatePercent: decimal.NewFromInt(5),
		BiayaJabatanCapMonthly:  decimal.NewFromInt(500_000),
		BiayaJabatanCapAnnual:   decimal.NewFromInt(6_000_000),
		TERFallbackRates: map[rates.TERCategory]decimal.Decimal{
			rates.TERCategoryA: decimal.NewFromInt(5),
			rates.TERCategoryB: decimal.NewFromInt(10),
			rates.TERCategoryC: decimal.NewFromInt(15),
		},
	}
}

func (c Config) fallbackRate(category rates.TERCategory) decimal.Decimal {
	if rate, ok := c.TERFallbackRates[category]; ok {
		return rate
	}
	return DefaultConfig().TERFallbackRates[category]
}
