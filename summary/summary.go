package summary

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dannyaudian/payroll-indonesia-go/internal/validator"
)

var logger = slog.Default()

// SetLogger overrides the package logger.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

var monthNames = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName returns the Indonesian month name, or the number itself when
// out of range.
func MonthName(month int) string {
	if !validator.IsValidMonth(month) {
		return fmt.Sprintf("%d", month)
	}
	return monthNames[month-1]
}

// inferType guesses the program from a component name for lines that carry
// no explicit type. Returns "" when nothing matches.
func inferType(component string) BPJSType {
	name := strings.ToLower(component)
	switch {
	case strings.Contains(name, "kesehatan"):
		return TypeKesehatan
	case strings.Contains(name, "jht"):
		return TypeJHT
	case strings.Contains(name, "jp"):
		return TypeJP
	case strings.Contains(name, "jkk"):
		return TypeJKK
	case strings.Contains(name, "jkm"):
		return TypeJKM
	}
	return ""
}

// AggregatePeriod sums the per-employee contribution lines into per-program
// totals for one company and period. Lines without a recognizable program
// are skipped with a warning; they never silently land in the wrong bucket.
func AggregatePeriod(company string, month, year int, lines []EmployeeContribution) (TypeTotals, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(company) {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "is required"})
	}
	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a plausible payroll year"})
	}
	if len(errs) > 0 {
		return TypeTotals{}, errs
	}

	totals := TypeTotals{
		Company: company,
		Month:   month,
		Year:    year,
		Totals:  make(map[BPJSType]decimal.Decimal, 5),
	}
	for _, t := range AllBPJSTypes() {
		totals.Totals[t] = decimal.Zero
	}

	for _, line := range lines {
		bpjsType := line.Type
		if bpjsType == "" {
			bpjsType = inferType(line.Component)
		}
		if _, ok := totals.Totals[bpjsType]; !ok {
			logger.Warn("contribution line has no recognizable BPJS type, skipping",
				"employee", line.Employee, "component", line.Component)
			continue
		}
		totals.Totals[bpjsType] = totals.Totals[bpjsType].Add(line.Amount)
	}
	return totals, nil
}

// AllocateToAccounts turns the period totals into payable ledger lines, one
// per program with a positive amount. Allocation is fail-closed: a zero
// grand total, or any positive program missing a GL account, rejects the
// whole batch so nothing is posted partially.
func AllocateToAccounts(totals TypeTotals, mapping AccountMapping) ([]LedgerLine, error) {
	if !totals.Total().IsPositive() {
		return nil, ErrNothingToPost
	}

	var missing []string
	var lines []LedgerLine
	for _, t := range AllBPJSTypes() {
		amount := totals.Totals[t]
		if !amount.IsPositive() {
			continue
		}
		account := mapping[t]
		if account == "" {
			missing = append(missing, string(t))
			continue
		}
		lines = append(lines, LedgerLine{
			Account:   account,
			Type:      t,
			Amount:    amount,
			Reference: formatReference(t, totals.Month, totals.Year),
			Description: fmt.Sprintf("BPJS %s %s %d",
				t, MonthName(totals.Month), totals.Year),
		})
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingAccount, strings.Join(missing, ", "))
	}
	return lines, nil
}

func formatReference(t BPJSType, month, year int) string {
	return fmt.Sprintf("BPJS-%s-%02d-%d", strings.ToUpper(string(t)), month, year)
}

// NewPaymentSummary aggregates and validates one period in a single step.
// The total must be positive for the summary to exist at all; uniqueness
// per company/period is the persistence layer's concern.
func NewPaymentSummary(company string, month, year int, lines []EmployeeContribution) (PaymentSummary, error) {
	totals, err := AggregatePeriod(company, month, year, lines)
	if err != nil {
		return PaymentSummary{}, err
	}
	total := totals.Total()
	if !total.IsPositive() {
		return PaymentSummary{}, ErrNothingToPost
	}
	return PaymentSummary{
		ID:        uuid.NewString(),
		Company:   company,
		Month:     month,
		MonthName: MonthName(month),
		Year:      year,
		Lines:     lines,
		Totals:    totals,
		Total:     total,
	}, nil
}
