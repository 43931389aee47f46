package summary

import (
	"github.com/shopspring/decimal"
)

// BPJSType identifies one of the five statutory programs a payment summary
// aggregates over.
type BPJSType string

const (
	TypeKesehatan BPJSType = "Kesehatan"
	TypeJHT       BPJSType = "JHT"
	TypeJP        BPJSType = "JP"
	TypeJKK       BPJSType = "JKK"
	TypeJKM       BPJSType = "JKM"
)

// AllBPJSTypes lists the programs in posting order.
func AllBPJSTypes() []BPJSType {
	return []BPJSType{TypeKesehatan, TypeJHT, TypeJP, TypeJKK, TypeJKM}
}

// EmployeeContribution - one BPJS amount for one employee in the period,
// employee or employer share. Type may be empty for lines coming from
// systems that only carry a component name; the aggregator infers it.
type EmployeeContribution struct {
	Employee  string          `json:"employee"`
	Component string          `json:"component"`
	Type      BPJSType        `json:"type,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
}

// TypeTotals holds the per-program sums for one company and period.
type TypeTotals struct {
	Company string                       `json:"company"`
	Month   int                          `json:"month"`
	Year    int                          `json:"year"`
	Totals  map[BPJSType]decimal.Decimal `json:"totals"`
}

// Total returns the grand total across all programs.
func (t TypeTotals) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range t.Totals {
		total = total.Add(amount)
	}
	return total
}

// AccountMapping maps each program to the GL payable account it posts to.
type AccountMapping map[BPJSType]string

// LedgerLine - one payable posting produced by the allocation.
type LedgerLine struct {
	Account     string          `json:"account"`
	Type        BPJSType        `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
}

// PaymentSummary is the aggregate-and-validate result for one period,
// ready for the persistence layer to store and post.
type PaymentSummary struct {
	ID        string                 `json:"id"`
	Company   string                 `json:"company"`
	Month     int                    `json:"month"`
	MonthName string                 `json:"month_name"`
	Year      int                    `json:"year"`
	Lines     []EmployeeContribution `json:"lines"`
	Totals    TypeTotals             `json:"totals"`
	Total     decimal.Decimal        `json:"total"`
}
