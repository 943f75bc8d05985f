package domain

import "errors"

// Failure taxonomy shared between repos and services. Repos translate
// driver-level errors into these; handlers map them to HTTP statuses.
var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAllocationConflict = errors.New("usage id already allocated")
	ErrDuplicateRequest   = errors.New("purchase already processed for this request")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyFinalized   = errors.New("site url already finalized")
)
