package summary

import "errors"

var (
	ErrNothingToPost  = errors.New("period total must be greater than zero")
	ErrMissingAccount = errors.New("missing GL account for BPJS type")
)
