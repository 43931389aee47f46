package slip

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dannyaudian/payroll-indonesia-go/internal/money"
)

const biayaJabatanComponent = "biaya jabatan"

// Legacy deduction components that reduce netto even without flags:
// the BPJS employee contributions and other pension schemes.
var nettoDeductionNames = map[string]struct{}{
	"bpjs kesehatan employee": {},
	"bpjs jht employee":       {},
	"bpjs jp employee":        {},
	"iuran pensiun":           {},
	"dana pensiun":            {},
}

// Legacy names for the income-tax deduction line itself.
var taxComponentNames = map[string]struct{}{
	"pph 21": {},
	"pph21":  {},
	"pph-21": {},
}

func normalized(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isBiayaJabatan(line ComponentLine) bool {
	return strings.Contains(normalized(line.Component), biayaJabatanComponent)
}

// BrutoEarnings sums every earning that adds to gross taxable income,
// including taxable benefits in kind.
func (s *Slip) BrutoEarnings() decimal.Decimal {
	total := decimal.Zero
	for _, row := range s.Earnings {
		if !row.IsTaxApplicable && !row.IsIncomeTaxComponent && !row.VariableBasedOnTaxableSalary {
			continue
		}
		if row.DoNotIncludeInTotal || row.StatisticalComponent || row.ExemptedFromIncomeTax {
			continue
		}
		total = total.Add(row.Amount)
	}
	return total
}

// IncomeTaxDeductions sums the deductions that reduce netto (typically the
// BPJS employee contributions). The Biaya Jabatan line is always excluded
// here so it is never counted twice.
func (s *Slip) IncomeTaxDeductions() decimal.Decimal {
	total := decimal.Zero
	for _, row := range s.Deductions {
		if isBiayaJabatan(row) {
			continue
		}
		_, legacyName := nettoDeductionNames[normalized(row.Component)]
		if !row.IsIncomeTaxComponent && !row.VariableBasedOnTaxableSalary && !row.IsNettoDeduction && !legacyName {
			continue
		}
		if row.DoNotIncludeInTotal || row.StatisticalComponent {
			continue
		}
		total = total.Add(row.Amount)
	}
	return total
}

// BiayaJabatanComponent returns the explicit Biaya Jabatan deduction line
// amount, or zero when the slip carries none.
func (s *Slip) BiayaJabatanComponent() decimal.Decimal {
	for _, row := range s.Deductions {
		if isBiayaJabatan(row) {
			return row.Amount
		}
	}
	return decimal.Zero
}

// TaxPaid returns the PPh 21 withheld on this slip: the Tax field when set,
// otherwise the amount of a deduction line named after the tax itself.
func (s *Slip) TaxPaid() decimal.Decimal {
	if !s.Tax.IsZero() {
		return s.Tax
	}
	for _, row := range s.Deductions {
		if _, ok := taxComponentNames[normalized(row.Component)]; ok {
			return row.Amount
		}
	}
	return decimal.Zero
}

// BiayaJabatan derives the occupational expense deduction:
// min(bruto * rate%, cap).
func BiayaJabatan(bruto, ratePercent, cap decimal.Decimal) decimal.Decimal {
	bj := money.Percent(bruto, ratePercent)
	if bj.GreaterThan(cap) {
		return cap
	}
	return bj
}

// Netto derives net taxable income from gross income, tax-deductible
// deductions and the occupational expense deduction.
func Netto(bruto, deductions, biayaJabatan decimal.Decimal) decimal.Decimal {
	return bruto.Sub(deductions).Sub(biayaJabatan)
}

// BuildAnnualAggregate rebuilds the year-to-date sums from the monthly
// slips, applying the same component-flag rules as the monthly calculators.
// Slips from other years than the first slip's year are ignored.
func BuildAnnualAggregate(slips []*Slip) AnnualAggregate {
	agg := AnnualAggregate{
		BrutoTotal:              decimal.Zero,
		IncomeTaxDeductionTotal: decimal.Zero,
		BiayaJabatanTotal:       decimal.Zero,
		NettoTotal:              decimal.Zero,
		TaxPaid:                 decimal.Zero,
	}
	for _, s := range slips {
		if agg.Year == 0 {
			agg.Year = s.Year
		}
		if s.Year != agg.Year {
			continue
		}
		bruto := s.BrutoEarnings()
		deductions := s.IncomeTaxDeductions()
		bj := s.BiayaJabatanComponent()

		agg.Months++
		agg.BrutoTotal = agg.BrutoTotal.Add(bruto)
		agg.IncomeTaxDeductionTotal = agg.IncomeTaxDeductionTotal.Add(deductions)
		agg.BiayaJabatanTotal = agg.BiayaJabatanTotal.Add(bj)
		agg.NettoTotal = agg.NettoTotal.Add(Netto(bruto, deductions, bj))
		agg.TaxPaid = agg.TaxPaid.Add(s.TaxPaid())
	}
	return agg
}
