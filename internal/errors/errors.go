// Package errors defines the domain error taxonomy shared by the
// wallet core and its callers. Domain errors are expected outcomes:
// callers branch on them with errors.Is to produce user-facing
// responses instead of treating them as faults.
package errors

import "fmt"

// DomainError is a business rule violation with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// InsufficientFundsError reports a debit that exceeds the current
// balance. It carries both figures so callers can show them.
type InsufficientFundsError struct {
	Balance   string
	Requested string
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s, requested %s", e.Balance, e.Requested)
}

// Is makes errors.Is(err, ErrInsufficientBalance) match regardless of
// the attached amounts.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
