package rates

import "errors"

var (
	ErrUnknownTaxStatus   = errors.New("tax status not found in PTKP table")
	ErrUnmappedTaxStatus  = errors.New("tax status has no TER category mapping")
	ErrInvalidSchedule    = errors.New("progressive bracket schedule is invalid")
	ErrInvalidTERCategory = errors.New("invalid TER category")
)
