package domain

import "errors"

// Domain errors (no external dependencies). Every failure is recoverable and
// user-facing; the HTTP layer maps these onto status codes.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrDuplicate     = errors.New("duplicate resource")
	ErrInvalidInput  = errors.New("invalid input")
	ErrProductInUse  = errors.New("product is referenced by existing sales")
	ErrInvalidAmount = errors.New("payment amount is not valid for this sale")
)
