package pph21

import (
	"github.com/shopspring/decimal"

	"github.com/dannyaudian/payroll-indonesia-go/internal/money"
	"github.com/dannyaudian/payroll-indonesia-go/rates"
	"github.com/dannyaudian/payroll-indonesia-go/slip"
)

// CalculateDecember settles the year: the annual tax under the progressive
// schedule minus everything withheld January through November. The
// correction is signed; a negative value is a refund owed to the employee
// and is reported as such.
//
// yearSlips are the employee's monthly slips for the tax year, December
// included. Slips from other years than the first slip's year are ignored,
// matching slip.BuildAnnualAggregate. taxPaidJanNov overrides the
// withholding total summed from the slips when non-nil, for callers that
// track it separately.
func CalculateDecember(emp slip.Record, yearSlips []*slip.Slip, taxPaidJanNov *decimal.Decimal, store rates.Store, cfg Config) (Result, error) {
	if len(yearSlips) == 0 {
		return zeroResult(), ErrNilSlip
	}
	for _, s := range yearSlips {
		if s == nil {
			return zeroResult(), ErrNilSlip
		}
	}
	year := yearSlips[0].Year
	for _, s := range yearSlips {
		if s.Year != year {
			continue
		}
		if errs := validatePeriod(s.Month, s.Year); len(errs) > 0 {
			return zeroResult(), errs
		}
	}
	if !emp.IsFullTime() {
		return zeroResult(), nil
	}

	bruto := decimal.Zero
	deductions := decimal.Zero
	bj := decimal.Zero
	withheld := decimal.Zero
	for _, s := range yearSlips {
		if s.Year != year {
			continue
		}
		monthBruto := s.BrutoEarnings()
		monthBJ := s.BiayaJabatanComponent()
		if monthBJ.IsZero() {
			monthBJ = slip.BiayaJabatan(monthBruto, cfg.BiayaJabatanRatePercent, cfg.BiayaJabatanCapMonthly)
		}
		bruto = bruto.Add(monthBruto)
		deductions = deductions.Add(s.IncomeTaxDeductions())
		bj = bj.Add(monthBJ)
		if s.Month != 12 {
			withheld = withheld.Add(s.TaxPaid())
		}
	}
	if taxPaidJanNov != nil {
		withheld = *taxPaidJanNov
	}

	return settleYear(emp, bruto, deductions, bj, withheld, store, cfg)
}

// CalculateDecemberFromAggregate settles the year from pre-summed totals,
// for callers that keep year-to-date figures instead of the full slip set.
func CalculateDecemberFromAggregate(emp slip.Record, agg slip.AnnualAggregate, store rates.Store, cfg Config) (Result, error) {
	if errs := validatePeriod(12, agg.Year); len(errs) > 0 {
		return zeroResult(), errs
	}
	if !emp.IsFullTime() {
		return zeroResult(), nil
	}
	return settleYear(emp, agg.BrutoTotal, agg.IncomeTaxDeductionTotal, agg.BiayaJabatanTotal, agg.TaxPaid, store, cfg)
}

func settleYear(emp slip.Record, bruto, deductions, bj, withheld decimal.Decimal, store rates.Store, cfg Config) (Result, error) {
	if bruto.IsNegative() {
		return zeroResult(), ErrNegativeIncome
	}
	if bj.GreaterThan(cfg.BiayaJabatanCapAnnual) {
		bj = cfg.BiayaJabatanCapAnnual
	}

	netto := slip.Netto(bruto, deductions, bj)
	ptkp := ptkpAmount(emp.TaxStatus, store)
	pkp := money.FloorToThousand(netto.Sub(ptkp))
	if pkp.IsNegative() {
		pkp = decimal.Zero
	}

	annualTax, brackets := CalculateProgressive(pkp, store.TaxBrackets())
	annualTax = money.RoundRupiah(annualTax)

	result := zeroResult()
	result.Bruto = bruto
	result.IncomeTaxDeductions = deductions
	result.BiayaJabatan = bj
	result.Netto = netto
	result.PTKP = ptkp
	result.PKP = pkp
	result.Brackets = brackets
	result.TaxAnnual = annualTax
	result.TaxPaidJanNov = withheld
	result.Correction = annualTax.Sub(withheld)
	result.Tax = result.Correction
	result.EmploymentTypeChecked = true
	return result, nil
}
