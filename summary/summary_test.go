package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idr(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func periodLines() []EmployeeContribution {
	return []EmployeeContribution{
		{Employee: "EMP-0001", Component: "BPJS Kesehatan Employee", Type: TypeKesehatan, Amount: idr(100_000)},
		{Employee: "EMP-0001", Component: "BPJS Kesehatan Employer", Type: TypeKesehatan, Amount: idr(400_000)},
		{Employee: "EMP-0001", Component: "BPJS JHT Employee", Type: TypeJHT, Amount: idr(200_000)},
		// untyped lines resolve by component name
		{Employee: "EMP-0002", Component: "BPJS JHT Employer", Amount: idr(370_000)},
		{Employee: "EMP-0002", Component: "BPJS JKK", Amount: idr(24_000)},
		{Employee: "EMP-0002", Component: "BPJS JKM", Amount: idr(30_000)},
	}
}

func TestAggregatePeriod(t *testing.T) {
	totals, err := AggregatePeriod("PT Maju", 3, 2026, periodLines())
	require.NoError(t, err)

	assert.True(t, totals.Totals[TypeKesehatan].Equal(idr(500_000)))
	assert.True(t, totals.Totals[TypeJHT].Equal(idr(570_000)))
	assert.True(t, totals.Totals[TypeJP].IsZero())
	assert.True(t, totals.Totals[TypeJKK].Equal(idr(24_000)))
	assert.True(t, totals.Totals[TypeJKM].Equal(idr(30_000)))
	assert.True(t, totals.Total().Equal(idr(1_124_000)))
}

func TestAggregatePeriodSkipsUnknownLines(t *testing.T) {
	lines := append(periodLines(), EmployeeContribution{
		Employee: "EMP-0003", Component: "Potongan Kasbon", Amount: idr(9_999_999),
	})
	totals, err := AggregatePeriod("PT Maju", 3, 2026, lines)
	require.NoError(t, err)
	assert.True(t, totals.Total().Equal(idr(1_124_000)))
}

func TestAggregatePeriodInvalidPeriod(t *testing.T) {
	_, err := AggregatePeriod("PT Maju", 13, 2026, periodLines())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month")

	_, err = AggregatePeriod("PT Maju", 3, 1999, periodLines())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year")

	_, err = AggregatePeriod("   ", 3, 2026, periodLines())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company")
}

func fullMapping() AccountMapping {
	return AccountMapping{
		TypeKesehatan: "BPJS Kesehatan Payable - PM",
		TypeJHT:       "BPJS JHT Payable - PM",
		TypeJP:        "BPJS JP Payable - PM",
		TypeJKK:       "BPJS JKK Payable - PM",
		TypeJKM:       "BPJS JKM Payable - PM",
	}
}

func TestAllocateToAccounts(t *testing.T) {
	totals, err := AggregatePeriod("PT Maju", 3, 2026, periodLines())
	require.NoError(t, err)

	lines, err := AllocateToAccounts(totals, fullMapping())
	require.NoError(t, err)

	// only types with a positive amount are posted; JP is absent
	require.Len(t, lines, 4)
	assert.Equal(t, TypeKesehatan, lines[0].Type)
	assert.Equal(t, "BPJS Kesehatan Payable - PM", lines[0].Account)
	assert.Equal(t, "BPJS-KESEHATAN-03-2026", lines[0].Reference)
	assert.Contains(t, lines[0].Description, "Maret")
}

func TestAllocateToAccountsFailClosed(t *testing.T) {
	totals, err := AggregatePeriod("PT Maju", 3, 2026, periodLines())
	require.NoError(t, err)

	mapping := fullMapping()
	delete(mapping, TypeJKK)
	delete(mapping, TypeJKM)

	lines, err := AllocateToAccounts(totals, mapping)
	assert.ErrorIs(t, err, ErrMissingAccount)
	assert.Contains(t, err.Error(), "JKK")
	assert.Contains(t, err.Error(), "JKM")
	assert.Nil(t, lines)
}

func TestAllocateToAccountsNothingToPost(t *testing.T) {
	totals, err := AggregatePeriod("PT Maju", 3, 2026, nil)
	require.NoError(t, err)

	_, err = AllocateToAccounts(totals, fullMapping())
	assert.ErrorIs(t, err, ErrNothingToPost)
}

func TestNewPaymentSummary(t *testing.T) {
	s, err := NewPaymentSummary("PT Maju", 3, 2026, periodLines())
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Maret", s.MonthName)
	assert.True(t, s.Total.Equal(idr(1_124_000)))
	assert.Len(t, s.Lines, 6)

	_, err = NewPaymentSummary("PT Maju", 3, 2026, nil)
	assert.ErrorIs(t, err, ErrNothingToPost)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Januari", MonthName(1))
	assert.Equal(t, "Desember", MonthName(12))
	assert.Equal(t, "13", MonthName(13))
}
