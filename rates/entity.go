package rates

import "github.com/shopspring/decimal"

// TERCategory buckets tax statuses for the flat-rate monthly method
// (PMK 168/2023). Exactly three categories exist.
type TERCategory string

const (
	TERCategoryA TERCategory = "TER A"
	TERCategoryB TERCategory = "TER B"
	TERCategoryC TERCategory = "TER C"
)

// Valid reports whether c is one of the three statutory categories.
func (c TERCategory) Valid() bool {
	switch c {
	case TERCategoryA, TERCategoryB, TERCategoryC:
		return true
	}
	return false
}

// TaxBracket - one layer of the progressive annual schedule.
// A zero IncomeTo marks the unbounded top bracket.
type TaxBracket struct {
	IncomeFrom  decimal.Decimal `json:"income_from"`
	IncomeTo    decimal.Decimal `json:"income_to"`
	RatePercent decimal.Decimal `json:"rate_percent"`
}

// Unbounded reports whether the bracket has no upper end.
func (b TaxBracket) Unbounded() bool {
	return b.IncomeTo.IsZero()
}

// TERBracket - one row of the monthly flat-rate table for a category.
type TERBracket struct {
	Category         TERCategory     `json:"category"`
	IncomeFrom       decimal.Decimal `json:"income_from"`
	IncomeTo         decimal.Decimal `json:"income_to"`
	RatePercent      decimal.Decimal `json:"rate_percent"`
	IsHighestBracket bool            `json:"is_highest_bracket"`
}
