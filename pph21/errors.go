package pph21

import "errors"

var (
	ErrNegativeIncome = errors.New("taxable income must be non-negative")
	ErrNilSlip        = errors.New("salary slip is required")
)
