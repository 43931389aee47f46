package pph21

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dannyaudian/payroll-indonesia-go/fixtures"
	"github.com/dannyaudian/payroll-indonesia-go/internal/money"
	"github.com/dannyaudian/payroll-indonesia-go/internal/validator"
	"github.com/dannyaudian/payroll-indonesia-go/rates"
	"github.com/dannyaudian/payroll-indonesia-go/slip"
)

var twelve = decimal.NewFromInt(12)

// fallbackTERCategory maps a tax status to its statutory TER category when
// the store has no mapping for it. Unrecognized statuses land in TER C, the
// highest-rate category.
func fallbackTERCategory(taxStatus string) rates.TERCategory {
	status := strings.ToUpper(strings.TrimSpace(taxStatus))
	switch {
	case status == "TK0":
		return rates.TERCategoryA
	case status == "K0" || strings.HasPrefix(status, "TK"):
		return rates.TERCategoryB
	case strings.HasPrefix(status, "K") || strings.HasPrefix(status, "HB"):
		return rates.TERCategoryC
	}
	logger.Warn("tax status has no TER category, assuming TER C", "tax_status", taxStatus)
	return rates.TERCategoryC
}

func terCategory(taxStatus string, store rates.Store) rates.TERCategory {
	category, err := store.TERCategoryFor(taxStatus)
	if err != nil {
		logger.Warn("TER category lookup failed, using status-based fallback",
			"tax_status", taxStatus, "error", err)
		return fallbackTERCategory(taxStatus)
	}
	return category
}

// CalculateTER resolves the flat TER rate for a monthly gross income and
// applies it. A missing category mapping or an income outside every bracket
// degrades to the configured fallback rate rather than failing; only a
// negative income is an error.
func CalculateTER(monthlyIncome decimal.Decimal, taxStatus string, store rates.Store, cfg Config) (TERResult, error) {
	if monthlyIncome.IsNegative() {
		return TERResult{}, ErrNegativeIncome
	}

	category := terCategory(taxStatus, store)
	result := TERResult{
		Category:    category,
		RatePercent: decimal.Zero,
		Tax:         decimal.Zero,
	}

	for _, b := range store.TERBrackets(category) {
		if monthlyIncome.LessThan(b.IncomeFrom) {
			continue
		}
		if b.IsHighestBracket || b.IncomeTo.IsZero() || monthlyIncome.LessThan(b.IncomeTo) {
			result.RatePercent = b.RatePercent
			result.Tax = money.RoundRupiah(money.Percent(monthlyIncome, b.RatePercent))
			return result, nil
		}
	}

	rate := cfg.fallbackRate(category)
	logger.Warn("no TER bracket matched, using fallback rate",
		"category", string(category), "income", monthlyIncome.String(), "rate", rate.String())
	result.RatePercent = rate
	result.Tax = money.RoundRupiah(money.Percent(monthlyIncome, rate))
	result.UsedFallback = true
	return result, nil
}

func ptkpAmount(taxStatus string, store rates.Store) decimal.Decimal {
	amount, err := store.PTKPAmount(taxStatus)
	if err != nil {
		fallback := fixtures.FallbackPTKPAmount(taxStatus)
		logger.Warn("PTKP lookup failed, using statutory default",
			"tax_status", taxStatus, "error", err, "ptkp", fallback.String())
		return fallback
	}
	return amount
}

// CalculateMonthlyTER runs the January-November monthly withholding for one
// salary slip: flat TER rate on gross income, with the netto/PTKP/PKP audit
// fields filled in for the record even though TER does not use them.
//
// Non-full-time employees get a zero result with EmploymentTypeChecked set
// to false; the caller decides whether that is worth reporting.
func CalculateMonthlyTER(emp slip.Record, s *slip.Slip, store rates.Store, cfg Config) (Result, error) {
	if s == nil {
		return zeroResult(), ErrNilSlip
	}
	if errs := validatePeriod(s.Month, s.Year); len(errs) > 0 {
		return zeroResult(), errs
	}
	if !emp.IsFullTime() {
		return zeroResult(), nil
	}

	bruto := s.BrutoEarnings()
	deductions := s.IncomeTaxDeductions()
	bj := s.BiayaJabatanComponent()
	if bj.IsZero() {
		bj = slip.BiayaJabatan(bruto, cfg.BiayaJabatanRatePercent, cfg.BiayaJabatanCapMonthly)
	}
	netto := slip.Netto(bruto, deductions, bj)

	ptkpMonthly := money.RoundRupiah(ptkpAmount(emp.TaxStatus, store).Div(twelve))
	pkp := netto.Sub(ptkpMonthly)
	if pkp.IsNegative() {
		pkp = decimal.Zero
	}

	ter, err := CalculateTER(bruto, emp.TaxStatus, store, cfg)
	if err != nil {
		return zeroResult(), err
	}

	result := zeroResult()
	result.Bruto = bruto
	result.IncomeTaxDeductions = deductions
	result.BiayaJabatan = bj
	result.Netto = netto
	result.PTKP = ptkpMonthly
	result.PKP = pkp
	result.Category = ter.Category
	result.RatePercent = ter.RatePercent
	result.Tax = ter.Tax
	result.EmploymentTypeChecked = true
	return result, nil
}

func validatePeriod(month, year int) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a plausible payroll year"})
	}
	return errs
}
