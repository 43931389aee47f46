package bpjs

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idr(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func statutoryRates() Rates {
	return Rates{
		KesehatanEmployeePercent: idr(1),
		KesehatanEmployerPercent: idr(4),
		KesehatanMaxSalary:       idr(12_000_000),
		JHTEmployeePercent:       idr(2),
		JHTEmployerPercent:       decimal.RequireFromString("3.7"),
		JPEmployeePercent:        idr(1),
		JPEmployerPercent:        idr(2),
		JPMaxSalary:              idr(9_077_600),
		JKKPercent:               decimal.RequireFromString("0.24"),
		JKMPercent:               decimal.RequireFromString("0.3"),
	}
}

func TestCalculate(t *testing.T) {
	c, err := Calculate(idr(10_000_000), statutoryRates())
	require.NoError(t, err)

	assert.True(t, c.KesehatanEmployee.Equal(idr(100_000)))
	assert.True(t, c.KesehatanEmployer.Equal(idr(400_000)))
	assert.True(t, c.JHTEmployee.Equal(idr(200_000)))
	assert.True(t, c.JHTEmployer.Equal(idr(370_000)))
	// JP base is capped at 9,077,600
	assert.True(t, c.JPEmployee.Equal(idr(90_776)))
	assert.True(t, c.JPEmployer.Equal(idr(181_552)))
	assert.True(t, c.JKK.Equal(idr(24_000)))
	assert.True(t, c.JKM.Equal(idr(30_000)))

	assert.True(t, c.TotalEmployee.Equal(idr(390_776)))
	assert.True(t, c.TotalEmployer.Equal(idr(1_005_552)))
}

func TestCalculateCapBinds(t *testing.T) {
	r := statutoryRates()

	atCap, err := Calculate(r.KesehatanMaxSalary, r)
	require.NoError(t, err)
	aboveCap, err := Calculate(idr(1_000_000_000), r)
	require.NoError(t, err)

	assert.True(t, atCap.KesehatanEmployee.Equal(aboveCap.KesehatanEmployee))
	assert.True(t, atCap.KesehatanEmployer.Equal(aboveCap.KesehatanEmployer))
	assert.True(t, atCap.JPEmployee.Equal(aboveCap.JPEmployee))

	// JHT has no cap, so it keeps growing
	assert.True(t, aboveCap.JHTEmployee.GreaterThan(atCap.JHTEmployee))
}

func TestCalculateNegativeSalary(t *testing.T) {
	_, err := Calculate(idr(-1), statutoryRates())
	assert.ErrorIs(t, err, ErrNegativeSalary)
}

func TestCalculateInvalidRates(t *testing.T) {
	r := statutoryRates()
	r.KesehatanEmployeePercent = idr(150)

	c, err := Calculate(idr(10_000_000), r)
	assert.ErrorIs(t, err, ErrInvalidRates)
	assert.True(t, c.TotalEmployee.IsZero())
}

func TestRatesValidate(t *testing.T) {
	assert.NoError(t, statutoryRates().Validate())

	r := statutoryRates()
	r.JPMaxSalary = idr(-1)
	r.JKKPercent = idr(-5)
	err := r.Validate()
	require.Error(t, err)
}
