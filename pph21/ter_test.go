package pph21

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dannyaudian/payroll-indonesia-go/fixtures"
	"github.com/dannyaudian/payroll-indonesia-go/rates"
	"github.com/dannyaudian/payroll-indonesia-go/slip"
)

// narrowStore serves a single-bracket TER A table for exercising the
// bracket match and the out-of-range fallback.
func narrowStore(t *testing.T) rates.Store {
	t.Helper()
	store, err := rates.NewStaticStore(
		map[string]decimal.Decimal{"TK0": idr(54_000_000)},
		map[string]rates.TERCategory{"TK0": rates.TERCategoryA},
		fixtures.DefaultTaxBrackets(),
		[]rates.TERBracket{
			{
				Category:    rates.TERCategoryA,
				IncomeFrom:  idr(5_000_000),
				IncomeTo:    idr(10_000_000),
				RatePercent: idr(5),
			},
		},
	)
	require.NoError(t, err)
	return store
}

func TestCalculateTERBracketMatch(t *testing.T) {
	result, err := CalculateTER(idr(8_000_000), "TK0", narrowStore(t), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, rates.TERCategoryA, result.Category)
	assert.True(t, result.RatePercent.Equal(idr(5)))
	assert.True(t, result.Tax.Equal(idr(400_000)))
	assert.False(t, result.UsedFallback)
}

func TestCalculateTERStatutoryTable(t *testing.T) {
	store := fixtures.DefaultStore()

	// 8,000,000 falls in the TER A 1.5% row
	result, err := CalculateTER(idr(8_000_000), "TK0", store, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, result.Tax.Equal(idr(120_000)))

	// below 5,400,000 the rate is zero
	result, err = CalculateTER(idr(5_000_000), "TK0", store, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, result.Tax.IsZero())
	assert.False(t, result.UsedFallback)
}

func TestCalculateTERFallbackRate(t *testing.T) {
	// income below the only bracket's lower bound: no match, no error
	result, err := CalculateTER(idr(1_000_000), "TK0", narrowStore(t), DefaultConfig())
	require.NoError(t, err)

	assert.True(t, result.UsedFallback)
	assert.True(t, result.RatePercent.Equal(idr(5)))
	assert.True(t, result.Tax.Equal(idr(50_000)))
}

func TestCalculateTERUnmappedStatus(t *testing.T) {
	// the store only maps TK0; other statuses derive their category from
	// the status code itself
	cases := []struct {
		status string
		want   rates.TERCategory
	}{
		{"TK1", rates.TERCategoryB},
		{"K0", rates.TERCategoryB},
		{"K2", rates.TERCategoryC},
		{"HB1", rates.TERCategoryC},
		{"BOGUS", rates.TERCategoryC},
	}
	for _, c := range cases {
		result, err := CalculateTER(idr(8_000_000), c.status, narrowStore(t), DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, c.want, result.Category, "status %s", c.status)
	}
}

func TestCalculateTERNegativeIncome(t *testing.T) {
	_, err := CalculateTER(idr(-1), "TK0", narrowStore(t), DefaultConfig())
	assert.ErrorIs(t, err, ErrNegativeIncome)
}

func monthlySlip(month int) *slip.Slip {
	return &slip.Slip{
		Employee: "EMP-0001",
		Month:    month,
		Year:     2026,
		Earnings: []slip.ComponentLine{
			{Component: "Gaji Pokok", Amount: idr(10_000_000), IsTaxApplicable: true},
		},
		Deductions: []slip.ComponentLine{
			{Component: "BPJS Kesehatan Employee", Amount: idr(100_000)},
			{Component: "BPJS JHT Employee", Amount: idr(200_000)},
			{Component: "BPJS JP Employee", Amount: idr(90_776)},
		},
	}
}

func fullTime() slip.Record {
	return slip.Record{
		ID:             "EMP-0001",
		TaxStatus:      "TK0",
		EmploymentType: slip.EmploymentFullTime,
	}
}

func TestCalculateMonthlyTER(t *testing.T) {
	result, err := CalculateMonthlyTER(fullTime(), monthlySlip(3), fixtures.DefaultStore(), DefaultConfig())
	require.NoError(t, err)

	assert.True(t, result.EmploymentTypeChecked)
	assert.True(t, result.Bruto.Equal(idr(10_000_000)))
	assert.True(t, result.IncomeTaxDeductions.Equal(idr(390_776)))
	// derived: min(5% of bruto, monthly cap)
	assert.True(t, result.BiayaJabatan.Equal(idr(500_000)))
	assert.True(t, result.Netto.Equal(idr(9_109_224)))
	assert.True(t, result.PTKP.Equal(idr(4_500_000)))
	assert.True(t, result.PKP.Equal(idr(4_609_224)))

	// 10,000,000 falls in the TER A 2% row; the rate applies to bruto
	assert.Equal(t, rates.TERCategoryA, result.Category)
	assert.True(t, result.RatePercent.Equal(idr(2)))
	assert.True(t, result.Tax.Equal(idr(200_000)))
}

func TestCalculateMonthlyTERExplicitBiayaJabatan(t *testing.T) {
	s := monthlySlip(3)
	s.Deductions = append(s.Deductions, slip.ComponentLine{
		Component: "Biaya Jabatan", Amount: idr(450_000),
	})
	result, err := CalculateMonthlyTER(fullTime(), s, fixtures.DefaultStore(), DefaultConfig())
	require.NoError(t, err)
	assert.True(t, result.BiayaJabatan.Equal(idr(450_000)))
}

func TestCalculateMonthlyTERNonFullTime(t *testing.T) {
	emp := fullTime()
	emp.EmploymentType = "Intern"

	result, err := CalculateMonthlyTER(emp, monthlySlip(3), fixtures.DefaultStore(), DefaultConfig())
	require.NoError(t, err)

	assert.False(t, result.EmploymentTypeChecked)
	assert.True(t, result.Tax.IsZero())
	assert.True(t, result.Bruto.IsZero())
}

func TestCalculateMonthlyTERInvalidInput(t *testing.T) {
	_, err := CalculateMonthlyTER(fullTime(), nil, fixtures.DefaultStore(), DefaultConfig())
	assert.ErrorIs(t, err, ErrNilSlip)

	bad := monthlySlip(13)
	_, err = CalculateMonthlyTER(fullTime(), bad, fixtures.DefaultStore(), DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month")
}
