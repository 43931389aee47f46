package bpjs

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/dannyaudian/payroll-indonesia-go/internal/money"
	"github.com/dannyaudian/payroll-indonesia-go/internal/validator"
)

var logger = slog.Default()

// SetLogger overrides the package logger.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

var hundred = decimal.NewFromInt(100)

func validPercent(field string, v decimal.Decimal, errs *validator.ValidationErrors) {
	if v.IsNegative() || v.GreaterThan(hundred) {
		*errs = append(*errs, validator.ValidationError{
			Field:   field,
			Message: "must be a percentage between 0 and 100",
		})
	}
}

// Validate checks every rate is a 0-100 percentage and caps are
// non-negative.
func (r Rates) Validate() error {
	var errs validator.ValidationErrors

	validPercent("kesehatan_employee_percent", r.KesehatanEmployeePercent, &errs)
	validPercent("kesehatan_employer_percent", r.KesehatanEmployerPercent, &errs)
	validPercent("jht_employee_percent", r.JHTEmployeePercent, &errs)
	validPercent("jht_employer_percent", r.JHTEmployerPercent, &errs)
	validPercent("jp_employee_percent", r.JPEmployeePercent, &errs)
	validPercent("jp_employer_percent", r.JPEmployerPercent, &errs)
	validPercent("jkk_percent", r.JKKPercent, &errs)
	validPercent("jkm_percent", r.JKMPercent, &errs)

	if r.KesehatanMaxSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "kesehatan_max_salary", Message: "must be non-negative"})
	}
	if r.JPMaxSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "jp_max_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// contribution computes one program amount: the base is capped when a
// positive cap applies, then the percentage is taken and rounded to whole
// rupiah.
func contribution(baseSalary, ratePercent, cap decimal.Decimal) decimal.Decimal {
	base := baseSalary
	if cap.IsPositive() && base.GreaterThan(cap) {
		base = cap
	}
	return money.RoundRupiah(money.Percent(base, ratePercent))
}

// Calculate computes the employee and employer contributions for all five
// programs from one base salary. A misconfigured rate aborts the whole
// calculation and returns the zero Contributions with an error; payroll
// callers surface that as a configuration problem rather than posting
// partial amounts.
func Calculate(baseSalary decimal.Decimal, r Rates) (Contributions, error) {
	if baseSalary.IsNegative() {
		return Contributions{}, fmt.Errorf("%w: %s", ErrNegativeSalary, baseSalary)
	}
	if err := r.Validate(); err != nil {
		logger.Warn("bpjs rates invalid, calculation aborted", "error", err)
		return Contributions{}, fmt.Errorf("%w: %s", ErrInvalidRates, err)
	}

	c := Contributions{
		KesehatanEmployee: contribution(baseSalary, r.KesehatanEmployeePercent, r.KesehatanMaxSalary),
		KesehatanEmployer: contribution(baseSalary, r.KesehatanEmployerPercent, r.KesehatanMaxSalary),
		JHTEmployee:       contribution(baseSalary, r.JHTEmployeePercent, decimal.Zero),
		JHTEmployer:       contribution(baseSalary, r.JHTEmployerPercent, decimal.Zero),
		JPEmployee:        contribution(baseSalary, r.JPEmployeePercent, r.JPMaxSalary),
		JPEmployer:        contribution(baseSalary, r.JPEmployerPercent, r.JPMaxSalary),
		JKK:               contribution(baseSalary, r.JKKPercent, decimal.Zero),
		JKM:               contribution(baseSalary, r.JKMPercent, decimal.Zero),
	}
	c.TotalEmployee = c.KesehatanEmployee.Add(c.JHTEmployee).Add(c.JPEmployee)
	c.TotalEmployer = c.KesehatanEmployer.Add(c.JHTEmployer).Add(c.JPEmployer).Add(c.JKK).Add(c.JKM)
	return c, nil
}
