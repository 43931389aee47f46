package bpjs

import "errors"

var (
	ErrInvalidRates   = errors.New("bpjs rates configuration is invalid")
	ErrNegativeSalary = errors.New("base salary must be non-negative")
)
