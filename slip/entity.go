package slip

import (
	"github.com/shopspring/decimal"
)

// ComponentLine - single earning or deduction entry on a salary slip.
// The boolean flags, not the component name, decide tax treatment; the
// name-based fallbacks below only cover legacy components that were never
// flagged.
type ComponentLine struct {
	Component                    string          `json:"salary_component"`
	Amount                       decimal.Decimal `json:"amount"`
	IsTaxApplicable              bool            `json:"is_tax_applicable"`
	IsIncomeTaxComponent         bool            `json:"is_income_tax_component"`
	VariableBasedOnTaxableSalary bool            `json:"variable_based_on_taxable_salary"`
	DoNotIncludeInTotal          bool            `json:"do_not_include_in_total"`
	StatisticalComponent         bool            `json:"statistical_component"`
	ExemptedFromIncomeTax        bool            `json:"exempted_from_income_tax"`
	IsNettoDeduction             bool            `json:"is_pengurang_netto"`
}

// Slip - one salary record per employee per period.
type Slip struct {
	Employee   string          `json:"employee"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Earnings   []ComponentLine `json:"earnings"`
	Deductions []ComponentLine `json:"deductions"`
	// Tax is the PPh 21 already withheld on this slip, when tracked
	// directly instead of as a deduction line.
	Tax decimal.Decimal `json:"tax"`
}

// AnnualAggregate - year-to-date sums per employee, rebuilt on demand from
// the monthly slips. Eventually consistent with submitted records; no
// caching guarantee beyond that.
type AnnualAggregate struct {
	Year                    int             `json:"year"`
	Months                  int             `json:"months"`
	BrutoTotal              decimal.Decimal `json:"bruto_total"`
	IncomeTaxDeductionTotal decimal.Decimal `json:"income_tax_deduction_total"`
	BiayaJabatanTotal       decimal.Decimal `json:"biaya_jabatan_total"`
	NettoTotal              decimal.Decimal `json:"netto_total"`
	TaxPaid                 decimal.Decimal `json:"tax_paid"`
}
