package domain

import "errors"

// Shared store-level errors. Module packages keep their own validation
// sentinels; these two cross the repository boundary no matter which
// backend is in use.
var (
	ErrNotFound    = errors.New("record not found")
	ErrOverpayment = errors.New("payment amount exceeds remaining balance")
)
