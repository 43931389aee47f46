package pph21

import (
	"github.com/shopspring/decimal"

	"github.com/dannyaudian/payroll-indonesia-go/rates"
)

// BracketTax - one bracket's contribution in the progressive walk, kept as
// the audit trail of the calculation.
type BracketTax struct {
	From        decimal.Decimal `json:"from"`
	To          decimal.Decimal `json:"to"`
	Amount      decimal.Decimal `json:"amount"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	Tax         decimal.Decimal `json:"tax"`
}

// TERResult - outcome of a flat-rate TER lookup.
type TERResult struct {
	Category     rates.TERCategory `json:"category"`
	RatePercent  decimal.Decimal   `json:"rate_percent"`
	Tax          decimal.Decimal   `json:"tax"`
	UsedFallback bool              `json:"used_fallback"`
}

// Result - full audit record of one PPh 21 calculation. Created fresh per
// call and never mutated after return; the caller persists it onto its own
// salary record.
type Result struct {
	Bruto               decimal.Decimal `json:"bruto"`
	IncomeTaxDeductions decimal.Decimal `json:"income_tax_deductions"`
	BiayaJabatan        decimal.Decimal `json:"biaya_jabatan"`
	Netto               decimal.Decimal `json:"netto"`
	PTKP                decimal.Decimal `json:"ptkp"`
	PKP                 decimal.Decimal `json:"pkp"`

	// TER fields, set by the monthly calculation.
	Category    rates.TERCategory `json:"category,omitempty"`
	RatePercent decimal.Decimal   `json:"rate_percent"`

	// Progressive fields, set by the December calculation.
	Brackets      []BracketTax    `json:"brackets,omitempty"`
	TaxAnnual     decimal.Decimal `json:"tax_annual"`
	TaxPaidJanNov decimal.Decimal `json:"tax_paid_jan_nov"`
	// Correction is the December settlement: annual tax minus tax already
	// withheld. Negative means the employee is owed a refund.
	Correction decimal.Decimal `json:"correction"`

	// Tax is the amount that goes onto the slip for the period: the
	// monthly TER tax, or the December correction.
	Tax decimal.Decimal `json:"tax"`

	// EmploymentTypeChecked is false when the calculation did not apply
	// to the employee's employment type and everything above is zero.
	EmploymentTypeChecked bool `json:"employment_type_checked"`
}

func zeroResult() Result {
	return Result{
		Bruto:               decimal.Zero,
		IncomeTaxDeductions: decimal.Zero,
		BiayaJabatan:        decimal.Zero,
		Netto:               decimal.Zero,
		PTKP:                decimal.Zero,
		PKP:                 decimal.Zero,
		RatePercent:         decimal.Zero,
		TaxAnnual:           decimal.Zero,
		TaxPaidJanNov:       decimal.Zero,
		Correction:          decimal.Zero,
		Tax:                 decimal.Zero,
	}
}
