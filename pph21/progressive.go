package pph21

import (
	"github.com/shopspring/decimal"

	"github.com/dannyaudian/payroll-indonesia-go/fixtures"
	"github.com/dannyaudian/payroll-indonesia-go/internal/money"
	"github.com/dannyaudian/payroll-indonesia-go/rates"
)

var half = decimal.NewFromFloat(0.5)

// CalculateProgressive runs the marginal-bracket walk over annual taxable
// income. PKP is floored to the nearest lower 1,000 first (statutory
// rounding), then each bracket taxes min(remaining, bracket width) at its
// rate. Returns the annual tax and the per-bracket breakdown.
//
// An empty schedule falls back to the statutory default with a warning;
// payroll must not halt because the bracket table failed to load.
func CalculateProgressive(pkp decimal.Decimal, brackets []rates.TaxBracket) (decimal.Decimal, []BracketTax) {
	if len(brackets) == 0 {
		logger.Warn("progressive schedule missing, using statutory defaults")
		brackets = fixtures.DefaultTaxBrackets()
	}

	pkp = money.FloorToThousand(pkp)
	if !pkp.IsPositive() {
		return decimal.Zero, nil
	}

	tax := decimal.Zero
	remaining := pkp
	var details []BracketTax

	for _, b := range brackets {
		if !remaining.IsPositive() {
			break
		}
		taxed := remaining
		if !b.Unbounded() {
			width := b.IncomeTo.Sub(b.IncomeFrom)
			if width.LessThan(taxed) {
				taxed = width
			}
		}
		taxInBracket := money.Percent(taxed, b.RatePercent)
		tax = tax.Add(taxInBracket)
		details = append(details, BracketTax{
			From:        b.IncomeFrom,
			To:          b.IncomeFrom.Add(taxed),
			Amount:      taxed,
			RatePercent: b.RatePercent,
			Tax:         taxInBracket,
		})
		remaining = remaining.Sub(taxed)
	}

	if tax.GreaterThan(pkp.Mul(half)) {
		logger.Warn("computed tax exceeds 50% of PKP",
			"tax", tax.String(), "pkp", pkp.String())
	}
	return tax, details
}

// MonthlyFromAnnual spreads an annual tax over twelve months, rounded to
// whole rupiah.
func MonthlyFromAnnual(annual decimal.Decimal) decimal.Decimal {
	return money.RoundRupiah(annual.Div(decimal.NewFromInt(12)))
}
